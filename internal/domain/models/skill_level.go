package models

import (
	"database/sql/driver"
	"fmt"
)

// SkillLevel is the Arabic label stored for gallery skill levels and technique difficulty.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "مبتدئ"
	SkillLevelIntermediate SkillLevel = "متوسط"
	SkillLevelAdvanced     SkillLevel = "متقدم"
)

var skillLevelEn = map[SkillLevel]string{
	SkillLevelBeginner:     "Beginner",
	SkillLevelIntermediate: "Intermediate",
	SkillLevelAdvanced:     "Advanced",
}

func (l SkillLevel) Valid() bool {
	_, ok := skillLevelEn[l]
	return ok
}

// English returns the English label of a known level, or "" for unknown values.
func (l SkillLevel) English() string {
	return skillLevelEn[l]
}

// Value реализует driver.Valuer
func (l SkillLevel) Value() (driver.Value, error) {
	return string(l), nil
}

func (l *SkillLevel) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = ""
	case string:
		*l = SkillLevel(v)
	case []byte:
		*l = SkillLevel(v)
	default:
		return fmt.Errorf("unsupported type for SkillLevel: %T", src)
	}

	return nil
}
