package sqlite

import (
	"context"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

const inviteColumns = `id, email, token_hash, created_at`

type invitesRepo struct {
	q DBTX
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	return scanInvite(r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id))
}

func (r *invitesRepo) GetInviteByEmail(ctx context.Context, email string) (domain.Invite, error) {
	return scanInvite(r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE email = ?`, email))
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	return scanInvite(r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash))
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO invites (`+inviteColumns+`) VALUES (?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.TokenHash, toMillis(inv.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM invites WHERE id = ?`, id)
	return requireAffected(res, err)
}

func (r *invitesRepo) ListInvites(ctx context.Context) ([]domain.Invite, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Invite, 0)
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func scanInvite(row scanner) (domain.Invite, error) {
	var (
		inv     domain.Invite
		created int64
	)
	if err := row.Scan(&inv.ID, &inv.Email, &inv.TokenHash, &created); err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.CreatedAt = fromMillis(created)
	return inv, nil
}
