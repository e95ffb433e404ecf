package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Temperatures *TemperatureRepository
	CycleStarts  *CycleStartRepository
	Notes        *NoteRepository
	Snapshots    *SnapshotRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Temperatures: NewTemperatureRepository(database),
		CycleStarts:  NewCycleStartRepository(database),
		Notes:        NewNoteRepository(database),
		Snapshots:    NewSnapshotRepository(database),
	}
}
