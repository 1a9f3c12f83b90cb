package mapping

import (
	"database/sql"

	"github.com/norrapat/notihub/internal/core/domain"
	"github.com/norrapat/notihub/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		Username:           nullString(d.Username),
		PasswordHash:       nullString(d.PasswordHash),
		DisplayName:        d.DisplayName,
		PictureURL:         nullString(d.PictureURL),
		Email:              nullString(d.Email),
		LineUserID:         nullString(d.LineUserID),
		LoginProvider:      string(d.LoginProvider),
		CanReceiveEmail:    d.CanReceiveEmail,
		CanReceiveLine:     d.CanReceiveLine,
		CanReceivePush:     d.CanReceivePush,
		GoogleRefreshToken: nullString(d.GoogleRefreshToken),
		AuditFields:        ToModelAuditFields(d.AuditFields),
		DeletedAt:          d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:             m.UserID,
		Username:           m.Username.String,
		PasswordHash:       m.PasswordHash.String,
		DisplayName:        m.DisplayName,
		PictureURL:         m.PictureURL.String,
		Email:              m.Email.String,
		LineUserID:         m.LineUserID.String,
		LoginProvider:      domain.AuthProvider(m.LoginProvider),
		CanReceiveEmail:    m.CanReceiveEmail,
		CanReceiveLine:     m.CanReceiveLine,
		CanReceivePush:     m.CanReceivePush,
		GoogleRefreshToken: m.GoogleRefreshToken.String,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
		DeletedAt:          m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
