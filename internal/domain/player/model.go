package player

import (
	"strconv"
	"strings"
)

const (
	// AgeReferenceYear is the year ages are computed against.
	AgeReferenceYear = 2024
	// FallbackDateOfBirth stands in when the provider has no birth date.
	FallbackDateOfBirth = "1990-01-01"
	// FallbackAge is an approximation, not a measured value.
	FallbackAge = 25

	UnknownValue = "Unknown"
	DefaultRole  = "PLAYER"
)

// Player is a squad member flattened with its team.
type Player struct {
	ID          int64
	Name        string
	Position    string
	Nationality string
	DateOfBirth string
	Team        string
	TeamID      int64
	ShirtNumber *int
	Role        string
	Age         int
}

// SquadMember is the raw squad entry before defaults are applied.
type SquadMember struct {
	ID          int64
	Name        string
	Position    *string
	Nationality *string
	DateOfBirth *string
	ShirtNumber *int
	Role        *string
}

// DeriveAge returns AgeReferenceYear minus the birth year. Missing or
// unparseable dates, and a zero result, yield FallbackAge. Birth years after
// AgeReferenceYear give a negative age as is.
func DeriveAge(dateOfBirth string) int {
	dateOfBirth = strings.TrimSpace(dateOfBirth)
	if len(dateOfBirth) < 4 {
		return FallbackAge
	}
	year, err := strconv.Atoi(dateOfBirth[:4])
	if err != nil {
		return FallbackAge
	}
	age := AgeReferenceYear - year
	if age == 0 {
		return FallbackAge
	}
	return age
}

// FromSquadMember applies the optional-field defaults and derives the age.
func FromSquadMember(member SquadMember, teamID int64, teamName string) Player {
	age := FallbackAge
	dob := FallbackDateOfBirth
	if member.DateOfBirth != nil && strings.TrimSpace(*member.DateOfBirth) != "" {
		dob = *member.DateOfBirth
		age = DeriveAge(dob)
	}

	return Player{
		ID:          member.ID,
		Name:        member.Name,
		Position:    valueOr(member.Position, UnknownValue),
		Nationality: valueOr(member.Nationality, UnknownValue),
		DateOfBirth: dob,
		Team:        teamName,
		TeamID:      teamID,
		ShirtNumber: member.ShirtNumber,
		Role:        valueOr(member.Role, DefaultRole),
		Age:         age,
	}
}

func valueOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return *v
}

// Roster is every player of a competition.
type Roster struct {
	Competition string
	Season      string
	Players     []Player
}
