// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

package notifications

import (
	"encoding/json"
	"strings"

	svcerr "github.com/partlane/qnotify/pkg/errors/service"
)

// Side represents which role this deployment plays for a notification.
type Side uint8

// Possible Side values.
const (
	SenderSide Side = iota
	ReceiverSide

	// AllSides is used for querying purposes only.
	AllSides
)

const (
	senderSide   = "SENDER"
	receiverSide = "RECEIVER"
	allSides     = "ALL"
)

// String converts notification side to string literal.
func (s Side) String() string {
	switch s {
	case SenderSide:
		return senderSide
	case ReceiverSide:
		return receiverSide
	case AllSides:
		return allSides
	default:
		return unknown
	}
}

// ToSide converts string value to a valid notification side.
func ToSide(side string) (Side, error) {
	switch side {
	case senderSide:
		return SenderSide, nil
	case receiverSide:
		return ReceiverSide, nil
	case "", allSides:
		return AllSides, nil
	}
	return Side(0), svcerr.ErrInvalidSide
}

// SideValues returns the string literals of all storable side values.
func SideValues() []string {
	return []string{senderSide, receiverSide}
}

func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToSide(str)
	*s = val
	return err
}

// Severity represents the urgency classification of a notification.
type Severity uint8

// Possible Severity values.
const (
	MinorSeverity Severity = iota
	MajorSeverity
	CriticalSeverity
	LifeThreateningSeverity

	// AllSeverities is used for querying purposes only.
	AllSeverities
)

const (
	minorSeverity           = "MINOR"
	majorSeverity           = "MAJOR"
	criticalSeverity        = "CRITICAL"
	lifeThreateningSeverity = "LIFE-THREATENING"
	allSeverities           = "ALL"
)

// String converts severity to string literal.
func (s Severity) String() string {
	switch s {
	case MinorSeverity:
		return minorSeverity
	case MajorSeverity:
		return majorSeverity
	case CriticalSeverity:
		return criticalSeverity
	case LifeThreateningSeverity:
		return lifeThreateningSeverity
	case AllSeverities:
		return allSeverities
	default:
		return unknown
	}
}

// ToSeverity converts string value to a valid severity.
func ToSeverity(severity string) (Severity, error) {
	switch severity {
	case minorSeverity:
		return MinorSeverity, nil
	case majorSeverity:
		return MajorSeverity, nil
	case criticalSeverity:
		return CriticalSeverity, nil
	case lifeThreateningSeverity:
		return LifeThreateningSeverity, nil
	case "", allSeverities:
		return AllSeverities, nil
	}
	return Severity(0), svcerr.ErrInvalidSeverity
}

// SeverityValues returns the string literals of all storable severity values.
func SeverityValues() []string {
	return []string{minorSeverity, majorSeverity, criticalSeverity, lifeThreateningSeverity}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToSeverity(str)
	*s = val
	return err
}

// Type represents the kind of quality notification.
type Type uint8

// Possible Type values.
const (
	AlertType Type = iota
	InvestigationType

	// AllTypes is used for querying purposes only.
	AllTypes
)

const (
	alertType         = "ALERT"
	investigationType = "INVESTIGATION"
	allTypes          = "ALL"
)

// String converts notification type to string literal.
func (t Type) String() string {
	switch t {
	case AlertType:
		return alertType
	case InvestigationType:
		return investigationType
	case AllTypes:
		return allTypes
	default:
		return unknown
	}
}

// ToType converts string value to a valid notification type.
func ToType(nt string) (Type, error) {
	switch nt {
	case alertType:
		return AlertType, nil
	case investigationType:
		return InvestigationType, nil
	case "", allTypes:
		return AllTypes, nil
	}
	return Type(0), svcerr.ErrInvalidType
}

// TypeValues returns the string literals of all storable type values.
func TypeValues() []string {
	return []string{alertType, investigationType}
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToType(str)
	*t = val
	return err
}
