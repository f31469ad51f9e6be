package authapimodels

import (
	"github.com/pkg/errors"
	"request-mesh/models"
	dbmodels "request-mesh/models/db"
)

type UserCreateData struct {
	GoogleID string          `json:"googleId"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

func (d UserCreateData) Validate() error {
	if d.Email == "" {
		return errors.New("отсутствует почта пользователя")
	}
	if d.Name == "" {
		return errors.New("отсутствует имя пользователя")
	}
	return nil
}

type UserView struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Role:  rec.Role,
	}
}

type GoogleTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type GoogleUserInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
