// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "ascii", password: "secret"},
		{name: "empty", password: ""},
		{name: "unicode", password: "пароль-密码-🔑"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.True(t, strings.HasPrefix(hash, "$2a$"), "unexpected hash format %q", hash)

			assert.NoError(t, ComparePassword(hash, tt.password))
			assert.ErrorIs(t, ComparePassword(hash, tt.password+"x"), ErrPasswordMismatch)
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_CostIsEmbedded(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost+1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestHashPassword_LongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "73 ascii bytes", password: strings.Repeat("a", 73)},
		{name: "80 bytes of two-byte runes", password: strings.Repeat("é", 40)},
		{name: "200 bytes", password: strings.Repeat("ab", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)
			require.NoError(t, err)

			assert.NoError(t, ComparePassword(hash, tt.password))
			// bytes past the limit do not take part in the digest
			assert.NoError(t, ComparePassword(hash, tt.password[:maxPasswordBytes]))
			assert.ErrorIs(t, ComparePassword(hash, "x"+tt.password[1:]), ErrPasswordMismatch)
		})
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
