package store

import (
	"errors"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/egaotan/arbitrage-bot/engine"
)

type Dao struct {
	db *gorm.DB
}

func NewDao(url, scheme, user, passwd string) *Dao {
	dao := &Dao{}
	Logger := logger.Default
	Logger = Logger.LogMode(logger.Warn)
	db, err := gorm.Open(mysql.Open(user+":"+passwd+"@tcp("+url+")/"+
		scheme+"?charset=utf8"), &gorm.Config{Logger: Logger})
	if err != nil {
		panic(err)
	}
	err = db.AutoMigrate(&BotStateRecord{}, &EventRecord{})
	if err != nil {
		panic(err)
	}
	dao.db = db
	return dao
}

func (dao *Dao) CreateBotState(record *BotStateRecord) error {
	existing := &BotStateRecord{}
	res := dao.db.Where("authority = ?", record.Authority).Take(existing)
	if res.Error == nil {
		return engine.ErrAlreadyInitialized
	}
	if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return res.Error
	}
	return dao.db.Create(record).Error
}

func (dao *Dao) SaveBotState(record *BotStateRecord) error {
	return dao.db.Save(record).Error
}

func (dao *Dao) SelectBotState(authority string) (*BotStateRecord, error) {
	record := &BotStateRecord{}
	res := dao.db.Where("authority = ?", authority).Take(record)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, engine.ErrStateNotFound
	}
	return record, res.Error
}

func (dao *Dao) SaveEvent(record *EventRecord) error {
	return dao.db.Create(record).Error
}

func (dao *Dao) SelectEvents(authority string) ([]*EventRecord, error) {
	records := make([]*EventRecord, 0)
	res := dao.db.Where("authority = ?", authority).Order("timestamp").Find(&records)
	return records, res.Error
}
