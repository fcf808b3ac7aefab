package usecases

import "context"

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error)
}

type ToggleNotificationsExecutor interface {
	Execute(ctx context.Context, cmd ToggleNotificationsCommand) (*ToggleNotificationsResult, error)
}

type CompleteOnboardingExecutor interface {
	Execute(ctx context.Context, cmd CompleteOnboardingCommand) error
}

type GetUserStatsExecutor interface {
	Execute(ctx context.Context) (*GetUserStatsResult, error)
}

type ChangeRoleExecutor interface {
	Execute(ctx context.Context, cmd ChangeRoleCommand) (*ChangeRoleResult, error)
}

type SetUserActiveExecutor interface {
	Execute(ctx context.Context, cmd SetUserActiveCommand) (*SetUserActiveResult, error)
}
