package store

import (
	"gorm.io/gorm"
)

type Store interface {
	Analysis() Analysis
	Close() error
}

type DataStore struct {
	analysis Analysis
	db       *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		analysis: NewAnalysisStore(db),
		db:       db,
	}
}

func (s *DataStore) Analysis() Analysis {
	return s.analysis
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
