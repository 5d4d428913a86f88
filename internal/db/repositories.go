package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	DailyLogs    *DailyLogRepository
	Notes        *NoteRepository
	Library      *LibraryRepository
	Transactions *TransactionRepository
	Reviews      *ReviewRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		DailyLogs:    NewDailyLogRepository(database),
		Notes:        NewNoteRepository(database),
		Library:      NewLibraryRepository(database),
		Transactions: NewTransactionRepository(database),
		Reviews:      NewReviewRepository(database),
	}
}
