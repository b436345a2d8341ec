package helpers

import "github.com/sygpress/sygpress-api/internal/constants"

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case constants.StageProd, constants.StageDev, constants.StageLocal, constants.StageTest:
		return true
	default:
		return false
	}
}
