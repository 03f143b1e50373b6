package model

import "time"

type GenerationStatus string

const (
	GenerationStatusOK     GenerationStatus = "ok"
	GenerationStatusFailed GenerationStatus = "failed"
)

// GenerationRecord is one ledger row per generation attempt. It carries
// request metadata only; image bytes and free-text requests are never stored.
type GenerationRecord struct {
	ID                uint64           `gorm:"primaryKey;autoIncrement"`
	RequestID         string           `gorm:"column:request_id;size:36;index;not null"`
	MimeType          string           `gorm:"column:mime_type;size:64"`
	SizeBytes         int64            `gorm:"column:size_bytes"`
	Gender            string           `gorm:"column:gender;size:16"`
	AspectRatio       string           `gorm:"column:aspect_ratio;size:16"`
	SpecialRequestLen int              `gorm:"column:special_request_len"`
	PaymentMode       string           `gorm:"column:payment_mode;size:32"`
	Status            GenerationStatus `gorm:"column:status;size:16;not null"`
	ErrorClass        string           `gorm:"column:error_class;size:32"`
	ElapsedMs         int64            `gorm:"column:elapsed_ms"`
	CreatedAt         time.Time        `gorm:"autoCreateTime"`
}

func (GenerationRecord) TableName() string {
	return "generation_records"
}
