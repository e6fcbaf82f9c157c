package scope

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

func (m *implManager) Verify(tokenString string) (Payload, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var p Payload
	token, err := jwt.ParseWithClaims(tokenString, &p, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, opts...)
	if err != nil {
		return Payload{}, err
	}
	if !token.Valid {
		return Payload{}, jwt.ErrTokenSignatureInvalid
	}

	if p.UserID == "" {
		p.UserID = p.Subject
	}
	if p.UserID == "" {
		return Payload{}, ErrMissingSubject
	}
	if p.Version > PayloadVersion {
		return Payload{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, p.Version)
	}
	return p, nil
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	if p.UserID == "" {
		return "", ErrMissingSubject
	}
	now := m.now()
	p.Version = PayloadVersion
	if p.Subject == "" {
		p.Subject = p.UserID
	}
	if m.issuer != "" {
		p.Issuer = m.issuer
	}
	p.IssuedAt = jwt.NewNumericDate(now)
	if m.ttl > 0 {
		p.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, p)
	return token.SignedString(m.secret)
}
