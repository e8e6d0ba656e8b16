// Package mock holds the gomock doubles used by unit tests.
package mock

//go:generate mockgen -source=../../internal/usecase/commands/auth.go -destination=commands/auth.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/claim.go -destination=commands/claim.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/drop.go -destination=commands/drop.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/queries/drop.go -destination=queries/drop.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/operator.go -destination=queries/operator.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/stats.go -destination=queries/stats.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/token_validator.go -destination=usecase/token_validator.go -package=usecasemock
//go:generate mockgen -source=../../internal/usecase/shared/uow.go -destination=shared/uow.go -package=sharedmock
//go:generate mockgen -source=../../internal/infra/repository/claim.go -destination=repository/claim.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/drop.go -destination=repository/drop.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/event.go -destination=repository/event.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/idempotency.go -destination=repository/idempotency.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/repository/operator.go -destination=repository/operator.go -package=repositorymock
//go:generate mockgen -source=../../internal/infra/readstore/drop.go -destination=readstore/drop.go -package=readstoremock
//go:generate mockgen -source=../../internal/infra/readstore/operator.go -destination=readstore/operator.go -package=readstoremock
//go:generate mockgen -source=../../internal/infra/readstore/stats.go -destination=readstore/stats.go -package=readstoremock
