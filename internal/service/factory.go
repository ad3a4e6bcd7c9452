package service

import (
	"youmatter.app/server/core/config"
	"youmatter.app/server/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	workOSCfg config.WorkOSConfig
}

func NewServices(stores *store.Stores, txRunner TxRunner, workOSCfg config.WorkOSConfig) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		workOSCfg: workOSCfg,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(
		s.stores.Users(),
		s.stores.Sessions(),
		s.txRunner,
		s.workOSCfg,
	)
}

func (s *Services) Journal() JournalService {
	return NewJournalService(s.stores.Journal())
}

func (s *Services) Mood() MoodService {
	return NewMoodService(s.stores.Mood())
}

func (s *Services) Water() WaterService {
	return NewWaterService(s.stores.Water())
}

func (s *Services) Period() PeriodService {
	return NewPeriodService(s.stores.Period())
}

func (s *Services) Feelings() FeelingService {
	return NewFeelingService(s.stores.Feelings())
}
