package store

type BotStateRecord struct {
	Authority         string `gorm:"primaryKey;type:varchar(48);not null"`
	IsPaused          bool   `gorm:"not null"`
	MinInterval       int64  `gorm:"type:bigint(20);not null"`
	LastExecutionTime int64  `gorm:"type:bigint(20);not null"`
	TotalTrades       uint64 `gorm:"type:bigint(20);not null"`
	TotalProfit       uint64 `gorm:"type:bigint(20);not null"`
	Version           uint8  `gorm:"not null"`
}

type EventRecord struct {
	Id          string `gorm:"primaryKey;type:varchar(40);not null"`
	Kind        string `gorm:"type:varchar(32);not null"`
	Actor       string `gorm:"type:varchar(48);not null"`
	Authority   string `gorm:"type:varchar(48);not null"`
	Profit      uint64 `gorm:"type:bigint(20);not null"`
	Amount      uint64 `gorm:"type:bigint(20);not null"`
	RouteCount  int    `gorm:"type:bigint(20);not null"`
	MinInterval int64  `gorm:"type:bigint(20);not null"`
	Timestamp   int64  `gorm:"type:bigint(20);not null"`
}
