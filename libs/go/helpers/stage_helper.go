package helpers

// Deployment stages
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage reports whether stage names a known deployment stage.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	}
	return false
}
