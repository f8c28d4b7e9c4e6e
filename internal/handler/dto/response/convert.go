package response

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView fills dst from a read-model view by field name.
func copyView(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
}
