package dto

type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type RegisterInput struct {
	Username     string `validate:"required,min=3"`
	Email        string `validate:"required,email"`
	Password     string `validate:"required,min=8"`
	ProgramLevel string `validate:"required,oneof=UNDERGRAD POSTGRAD"`
	Program      string `validate:"required"`
	YearIntake   string `validate:"required,oneof=SEM1 SEM2"`
}

type ProfileOutput struct {
	Username     string
	Email        string
	Program      string
	ProgramLevel string
	YearIntake   string
}

type UpdateProfileInput struct {
	Program      *string
	ProgramLevel *string `validate:"omitempty,oneof=UNDERGRAD POSTGRAD"`
	YearIntake   *string `validate:"omitempty,oneof=SEM1 SEM2"`
}

type StatusOutput struct {
	Authenticated bool
}

type RouteCheckOutput struct {
	Allowed    bool
	RedirectTo string
}
