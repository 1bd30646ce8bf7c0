package entities

// ProfileDocument is the structured configuration document loaded once at
// start. Schema violations are reported, never silently defaulted.
type ProfileDocument struct {
	Upstream UpstreamProfile `json:"upstream" mapstructure:"upstream" validate:"required"`
	AP       APProfile       `json:"ap" mapstructure:"ap" validate:"required"`
}
