package types

import "time"

// Contact request statuses. Status only changes through operator action;
// the API never mutates it after creation.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ContactRequest represents a submitted project request.
// Optional fields are nil when the visitor left them blank and are
// stored as NULLs.
type ContactRequest struct {
	// ID is the unique identifier of the request, generated at creation.
	ID string `json:"id" db:"id"`

	// Name is the visitor's name.
	Name string `json:"name" db:"name"`

	// Email is the visitor's contact email address.
	Email string `json:"email" db:"email"`

	// Phone is the visitor's phone number, if provided.
	Phone *string `json:"phone" db:"phone"`

	// Company is the visitor's company name, if provided.
	Company *string `json:"company" db:"company"`

	// ProjectType is the requested project category code
	// (e.g., "e-commerce", "landing-page").
	ProjectType string `json:"project_type" db:"project_type"`

	// Budget is the visitor's budget range, if provided.
	Budget *string `json:"budget" db:"budget"`

	// Timeline is the requested delivery timeframe, if provided.
	Timeline *string `json:"timeline" db:"timeline"`

	// Description is the free-form project description.
	Description string `json:"description" db:"description"`

	// Status tracks the operator workflow state of the request.
	Status string `json:"status" db:"status"`

	// CreatedAt is the timestamp when the request was submitted.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
