package model

import "gorm.io/plugin/soft_delete"

// CalcEntry is a cached answer of the REST service.
type CalcEntry struct {
	ID int64 `json:"id"`
	// blake3 of operation, notation, expression and bindings
	Key        string `json:"key" gorm:"index:idx_key"`
	Operation  string `json:"operation"`
	Notation   string `json:"notation"`
	Expression string `json:"expression"`
	Bindings   string `json:"bindings"`
	Success    bool   `json:"success"`
	// converted expression or integer value
	Result string `json:"result"`
	// error messages separated by newlines
	Errors string `json:"errors"`

	Hits            int64 `json:"hits"`
	CreatedAt       int64 `json:"created_at"`
	LastAccess      int64 `json:"last_access" gorm:"index:idx_last_access"`
	ExpiredDuration int64 `json:"expired_duration"`
	/* 0 false 1 true */
	Deleted soft_delete.DeletedAt `json:"-" gorm:"softDelete:flag;default:0"`
}

func (CalcEntry) TableName() string {
	return "calc_entry"
}
