package model

// AllowedFileType is one row of the upload extension whitelist. The table is
// named base_url after the original schema, which stored a free-text label or
// URL next to each extension. Rows are immutable once created.
type AllowedFileType struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	BaseURL  string `gorm:"column:base_url" json:"baseUrl"`
	FileType string `gorm:"column:file_type" json:"file_type"`
}

// TableName keeps the legacy table name.
func (AllowedFileType) TableName() string {
	return "base_url"
}
