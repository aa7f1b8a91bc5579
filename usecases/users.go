package usecases

import (
	"context"
	"errors"

	"rental-server/apperrors"
	"rental-server/entities"
	"rental-server/repositories"
)

// editableUserFields are the columns a partial update may change.
var editableUserFields = []string{"first_name", "surname", "email", "phone_number", "avatar"}

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// GetUser retrieves a user by ID
func (uc *UserUseCase) GetUser(ctx context.Context, id uint) (*entities.UserProfile, error) {
	user, err := uc.UserRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateUser applies a partial update. Every supplied editable field must be
// a string and at least one must be supplied; other keys are ignored.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) (*entities.User, error) {
	updates := make(map[string]interface{}, len(editableUserFields))
	for _, key := range editableUserFields {
		value, ok := fields[key]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			return nil, apperrors.BadRequest(msgBadRequest)
		}
		updates[key] = s
	}
	if len(updates) == 0 {
		return nil, apperrors.BadRequest(msgBadRequest)
	}

	user, err := uc.UserRepo.Update(ctx, id, updates)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
