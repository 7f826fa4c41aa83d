package quantix

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/devpik/quantix-nutri-ai/internal/app"
	"github.com/devpik/quantix-nutri-ai/internal/ledger"
	"github.com/devpik/quantix-nutri-ai/internal/provider/gemini"
	"github.com/devpik/quantix-nutri-ai/internal/store"
)

func withLedger(run func(*ledger.Ledger) error) error {
	path := strings.TrimSpace(dbPath)
	if path == "" {
		p, err := app.DefaultDBPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	s, err := store.Open(path, log)
	if err != nil {
		return err
	}
	defer s.Close()
	return run(ledger.New(s))
}

func geminiClient() (*gemini.Client, error) {
	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return &gemini.Client{APIKey: key, Model: os.Getenv("GEMINI_MODEL")}, nil
}

// spendCredit charges one AI credit after a successful call. Failed or
// unparseable calls never reach this point.
func spendCredit(l *ledger.Ledger) error {
	p := l.Profile()
	if p.Credits > 0 {
		p.Credits--
	}
	return l.SaveProfile(p)
}

func requireCredits(l *ledger.Ledger) error {
	if l.Profile().Credits <= 0 {
		return fmt.Errorf("no AI credits left")
	}
	return nil
}

func parseDateOrToday(l *ledger.Ledger, date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return l.TodayKey(), nil
	}
	if _, err := time.ParseInLocation(ledger.DateKeyLayout, date, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// dateKeysBetween expands an inclusive key range into the list of days.
func dateKeysBetween(from, to string) ([]string, error) {
	start, err := time.ParseInLocation(ledger.DateKeyLayout, from, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --from %q (expected YYYY-MM-DD)", from)
	}
	end, err := time.ParseInLocation(ledger.DateKeyLayout, to, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", to)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("--to must not be before --from")
	}
	var keys []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, ledger.DateKey(d))
	}
	return keys, nil
}
