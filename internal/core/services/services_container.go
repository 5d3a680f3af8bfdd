package services

import (
	portsrepo "github.com/taskhive/taskhive_backend/internal/core/ports/repositories"
	portssvc "github.com/taskhive/taskhive_backend/internal/core/ports/services"
	"github.com/taskhive/taskhive_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Membership first: it is the authorizer every other service leans on.
	memberService := NewMemberService(repos.MemberRepo, repos.UserRepo)
	container.Member = memberService

	container.User = NewUserService(repos.UserRepo)
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, repos.MemberRepo, memberService, cfg.InviteCodeLength)
	container.Project = NewProjectService(repos.ProjectRepo, memberService)
	container.Task = NewTaskService(repos.TaskRepo, repos.ProjectRepo, repos.MemberRepo, repos.UserRepo, memberService)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
