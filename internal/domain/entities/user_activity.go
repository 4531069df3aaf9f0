package entities

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	ActionLogin            = "login"
	ActionLogout           = "logout"
	ActionRegister         = "register"
	ActionChangePassword   = "change_password"
	ActionCreateOrcamento  = "create_orcamento"
	ActionUpdateOrcamento  = "update_orcamento"
	ActionDeleteOrcamento  = "delete_orcamento"
	ActionApproveOrcamento = "approve_orcamento"
	ActionRejectOrcamento  = "reject_orcamento"
	ActionCreateCliente    = "create_cliente"
	ActionUpdateCliente    = "update_cliente"
	ActionDeleteCliente    = "delete_cliente"
)

// Actions lists every action the service records.
var Actions = []string{
	ActionLogin, ActionLogout, ActionRegister, ActionChangePassword,
	ActionCreateOrcamento, ActionUpdateOrcamento, ActionDeleteOrcamento,
	ActionApproveOrcamento, ActionRejectOrcamento,
	ActionCreateCliente, ActionUpdateCliente, ActionDeleteCliente,
}

// UserActivity is an append-only audit entry. Login and logout entries also
// feed the session-time and login statistics aggregates.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index (user_id, timestamp)
//   - GSI action-index (action, timestamp)
type UserActivity struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Action         string         `json:"action"`
	Description    string         `json:"description"`
	Timestamp      time.Time      `json:"timestamp"`
	IPAddress      string         `json:"ip_address,omitempty"`
	UserAgent      string         `json:"user_agent,omitempty"`
	AdditionalData map[string]any `json:"additional_data"`
}

// DayWindow returns the first and last instant of the UTC calendar day of t.
func DayWindow(t time.Time) (start, end time.Time) {
	t = t.UTC()
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// SessionSeconds pairs login/logout entries (ascending by timestamp) and sums
// the paired durations. A second login before a logout replaces the open one.
// A session still open after the last entry is credited up to the earlier of
// now and windowEnd.
func SessionSeconds(activities []UserActivity, windowEnd, now time.Time) float64 {
	var (
		total float64
		open  *time.Time
	)
	for i := range activities {
		a := activities[i]
		switch a.Action {
		case ActionLogin:
			ts := a.Timestamp
			open = &ts
		case ActionLogout:
			if open != nil {
				total += a.Timestamp.Sub(*open).Seconds()
				open = nil
			}
		}
	}
	if open != nil {
		until := now
		if windowEnd.Before(until) {
			until = windowEnd
		}
		if d := until.Sub(*open); d > 0 {
			total += d.Seconds()
		}
	}
	return total
}

// LoginDiario is the number of logins and distinct users for one UTC day.
type LoginDiario struct {
	Data             string `json:"date"`
	LoginCount       int    `json:"login_count"`
	UniqueUsersCount int    `json:"unique_users_count"`
}

// LoginStatistics groups login entries by UTC calendar day, oldest first.
func LoginStatistics(activities []UserActivity) []LoginDiario {
	logins := lo.Filter(activities, func(a UserActivity, _ int) bool {
		return a.Action == ActionLogin
	})
	byDay := lo.GroupBy(logins, func(a UserActivity) string {
		return a.Timestamp.UTC().Format(time.DateOnly)
	})

	out := make([]LoginDiario, 0, len(byDay))
	for day, entries := range byDay {
		users := lo.Uniq(lo.Map(entries, func(a UserActivity, _ int) string { return a.UserID }))
		out = append(out, LoginDiario{
			Data:             day,
			LoginCount:       len(entries),
			UniqueUsersCount: len(users),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data < out[j].Data })
	return out
}

// HorasDeUso converts seconds to hours rounded to two decimals.
func HorasDeUso(seconds float64) float64 {
	return decimal.NewFromFloat(seconds).Div(decimal.NewFromInt(3600)).Round(2).InexactFloat64()
}

// FormatarHoras renders hours as "{H}h {M}min".
func FormatarHoras(horas float64) string {
	h := int(horas)
	m := int((horas - float64(h)) * 60)
	return fmt.Sprintf("%dh %dmin", h, m)
}
