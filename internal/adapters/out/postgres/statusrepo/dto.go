// Package statusrepo persists the status labels configured per lifecycle state.
// A state may carry several labels; exactly one of them is its default.
package statusrepo

// StatusStateDTO is one row of the state/status assignment table.
type StatusStateDTO struct {
	State     string `gorm:"type:varchar(32);primaryKey"`
	Status    string `gorm:"type:varchar(32);primaryKey"`
	IsDefault bool   `gorm:"not null;default:false;index"`
}

func (StatusStateDTO) TableName() string {
	return "order_status_states"
}
