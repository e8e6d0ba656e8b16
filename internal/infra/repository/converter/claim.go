package converter

import (
	"drop-arbiter/internal/domain/claim"
	"drop-arbiter/internal/domain/drop"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/internal/pkg/ptr"
)

func ClaimToCreateParams(c *claim.Claim) sqlc.CreateClaimParams {
	return sqlc.CreateClaimParams{
		ID:            c.ID(),
		DropID:        c.DropID(),
		ClaimantPhone: c.ClaimantPhone(),
		ClaimantName:  c.ClaimantName(),
		ClaimedAt:     pgconv.TimeToPgtype(c.ClaimedAt()),
	}
}

func ClaimFromRow(row sqlc.Claims) *claim.Claim {
	return claim.Reconstruct(
		row.ID,
		row.DropID,
		row.ClaimantPhone,
		row.ClaimantName,
		claim.Status(row.Status),
		pgconv.TimeFromPgtype(row.ClaimedAt),
		ptr.TimeFromPgtype(row.ConfirmedAt),
	)
}

// ClaimWithDropFromRow splits the locked join row into both aggregates.
func ClaimWithDropFromRow(row sqlc.GetClaimWithDropForUpdateRow) (*claim.Claim, *drop.Drop) {
	c := claim.Reconstruct(
		row.ID,
		row.DropID,
		row.ClaimantPhone,
		row.ClaimantName,
		claim.Status(row.Status),
		pgconv.TimeFromPgtype(row.ClaimedAt),
		ptr.TimeFromPgtype(row.ConfirmedAt),
	)
	d := drop.Reconstruct(
		row.DropID,
		row.OperatorID,
		row.OfferingID,
		pgconv.UUIDPtrFromPgtype(row.ScheduleBlockID),
		row.Title,
		row.SpotsAvailable,
		row.PriceCents,
		row.TimerSeconds,
		drop.Status(row.DropStatus),
		pgconv.TimeFromPgtype(row.LaunchedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.DropCreatedAt),
	)
	return c, d
}
