package services

type SetupUserCounter interface {
	CountUsers() (int64, error)
}

type SetupService struct {
	users SetupUserCounter
}

func NewSetupService(users SetupUserCounter) *SetupService {
	return &SetupService{users: users}
}

func (service *SetupService) SetupCompleted() (bool, error) {
	count, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
