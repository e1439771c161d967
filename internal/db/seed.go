package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"adpanel/internal/core/domain"
)

// SeedPassword is the password of every demo account.
const SeedPassword = "password"

type seedUser struct {
	username string
	role     domain.Role
	ranges   []domain.IDRange
	assigned []string
}

var seedUsers = []seedUser{
	{username: "alice", role: domain.RoleAdvertiser, ranges: []domain.IDRange{{Start: "1000", End: "1049"}}},
	{username: "bob", role: domain.RolePublisher, ranges: []domain.IDRange{{Start: "2000", End: "2049"}}},
	{username: "carol", role: domain.RoleAdvertiserManager, ranges: []domain.IDRange{{Start: "1000", End: "1049"}}, assigned: []string{"alice"}},
	{username: "dave", role: domain.RolePublisherManager, ranges: []domain.IDRange{{Start: "2000", End: "2049"}}, assigned: []string{"bob"}},
}

var seedLookups = map[string][]string{
	domain.ListPayableEvents: {"install", "registration", "purchase"},
	domain.ListMMPTrackers:   {"appsflyer", "adjust", "branch"},
	domain.ListPIDs:          {"pid_alpha", "pid_beta"},
	domain.ListGeos:          {"US", "IN", "BR", "DE"},
}

// Seed inserts demo accounts, lookup values and a month of campaign rows.
// Accounts are upserted by username so seeding twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ids := make(map[string]int64, len(seedUsers))
	for _, u := range seedUsers {
		assigned := make([]int64, 0, len(u.assigned))
		for _, name := range u.assigned {
			assigned = append(assigned, ids[name])
		}
		ranges, _ := json.Marshal(u.ranges)
		var id int64
		err = db.QueryRow(ctx, `INSERT INTO users (username, password_hash, role, assigned_subadmins, ranges)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role, assigned_subadmins = EXCLUDED.assigned_subadmins, ranges = EXCLUDED.ranges
RETURNING id`, u.username, string(hash), string(u.role), assigned, ranges).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		ids[u.username] = id
	}

	for list, values := range seedLookups {
		for _, v := range values {
			if _, err = db.Exec(ctx, `INSERT INTO lookups (list, value) VALUES ($1,$2) ON CONFLICT DO NOTHING`, list, v); err != nil {
				return err
			}
		}
	}

	if _, err = db.Exec(ctx, `INSERT INTO blacklist (pid) VALUES ('pid_blocked') ON CONFLICT DO NOTHING`); err != nil {
		return err
	}

	geos := seedLookups[domain.ListGeos]
	events := seedLookups[domain.ListPayableEvents]
	for kind, owner := range map[string]string{domain.SideAdvertiser: "alice", domain.SidePublisher: "bob"} {
		for i := 1; i <= 10; i++ {
			created := time.Now().Add(-time.Duration(r.Intn(20*24)) * time.Hour)
			total := int64(r.Intn(500))
			_, err = db.Exec(ctx, `INSERT INTO campaign_rows
(kind, owner_user_id, campaign_name, geo, os, payable_event, pid, adv_payout, pub_payout, shared_date, total_count, approved_count, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
				kind, ids[owner], fmt.Sprintf("Campaign %d", i), geos[r.Intn(len(geos))],
				[]string{"android", "ios"}[r.Intn(2)], events[r.Intn(len(events))], "pid_alpha",
				int64(150+r.Intn(100)), int64(100+r.Intn(50)), created, total, total-int64(r.Intn(int(total)+1)), created)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
