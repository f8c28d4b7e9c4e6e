package shared

import (
	"time"

	"github.com/google/uuid"
)

const OutboxKindPriceApproved = "price.approved"

type OutboxMessage struct {
	Kind    string
	Topic   string
	Key     string
	Payload []byte
	RunAt   time.Time
}

// PriceApprovedEvent is emitted once an approval commits.
type PriceApprovedEvent struct {
	SubmissionID  uuid.UUID `json:"submissionId"`
	ProductID     uuid.UUID `json:"productId"`
	SupermarketID string    `json:"supermarketId"`
	Price         float64   `json:"price"`
	Location      string    `json:"location"`
	ApprovedAt    time.Time `json:"approvedAt"`
	ModeratorID   uuid.UUID `json:"moderatorId"`
}

// OutboxRecord is a claimed outbox row handed to the relay.
type OutboxRecord struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Key      string
	Payload  []byte
	Attempts int
}

// OutboxOutcome settles a claimed record. A failed record is rescheduled
// at RetryAt unless Dead.
type OutboxOutcome struct {
	Sent    bool
	Err     string
	RetryAt time.Time
	Dead    bool
}
