package task

// Identity identifies task.
type Identity struct {
	ID int `json:"id"`
}

// Value is a task value provided at creation.
type Value struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// Validate checks that required fields are present.
func (v Value) Validate() error {
	if v.Name == "" || v.Date == "" {
		return ErrInvalid
	}

	return nil
}

// Patch is a partial task update, absent fields are left untouched.
type Patch struct {
	Completed *bool  `json:"completed,omitempty"`
	Date      string `json:"date,omitempty"`
}

// Apply changes entity fields that are present in patch.
func (p Patch) Apply(e *Entity) {
	if p.Completed != nil {
		e.Completed = *p.Completed
	}

	if p.Date != "" {
		e.Date = p.Date
	}
}

// Entity is an identified task entity.
//
// Name and UserID are omitted when a backend reports a partial record after update.
type Entity struct {
	Identity
	Name      string `json:"name,omitempty"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
	UserID    string `json:"userId,omitempty"`
}

// NewEntity creates an unidentified entity owned by owner.
func NewEntity(owner string, value Value) Entity {
	return Entity{
		Name:      value.Name,
		Completed: value.Completed,
		Date:      value.Date,
		UserID:    owner,
	}
}

// OwnedBy tells if entity is visible to owner, empty owner sees everything.
func (e Entity) OwnedBy(owner string) bool {
	return owner == "" || e.UserID == owner
}
