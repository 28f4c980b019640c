package member

import (
	"github.com/samajseva/trust-console/modules/member/infrastructure/persistence"
	"github.com/samajseva/trust-console/modules/member/presentation/controllers"
	"github.com/samajseva/trust-console/modules/member/services"
	"github.com/samajseva/trust-console/pkg/application"
	"github.com/samajseva/trust-console/pkg/configuration"
)

// Register wires the member module into the application: repository, services
// and the API controllers.
func Register(app *application.Application) {
	conf := configuration.Use()
	repo := persistence.NewMemberRepository()

	memberService := services.NewMemberService(repo, app.EventPublisher())
	importService := services.NewImportService(
		repo,
		app.EventPublisher(),
		app.Logger(),
		conf.Import.BatchSize,
		conf.Import.BatchPause,
	)

	app.RegisterControllers(
		controllers.NewMemberAPIController(memberService),
		controllers.NewImportAPIController(importService),
	)
}
