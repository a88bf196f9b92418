package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gastos-dev/gastos/internal/domain"
	"github.com/gastos-dev/gastos/pkg/web"
)

// Client orchestrates the fetch-render-mutate-refetch cycle against the
// expense ledger API. Every mutation round-trips to the server and then
// refetches the affected collection before totals are rederived; there
// are no optimistic updates.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string

	mu    sync.Mutex
	store Store
}

// NewClient returns a ledger client for the given API base URL and
// externally issued identity token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "bearer "+c.token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var errRes web.Response
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil || errRes.Error == "" {
			return fmt.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
		}

		return fmt.Errorf("%s %s: %s", method, path, errRes.Error)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) fetchExpenses(ctx context.Context) ([]domain.Expense, error) {
	var expenses []domain.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses", nil, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}

func (c *Client) fetchBalance(ctx context.Context) (domain.Balance, error) {
	var balance domain.Balance
	if err := c.do(ctx, http.MethodGet, "/balance", nil, &balance); err != nil {
		return domain.Balance{}, err
	}

	return balance, nil
}

// The store is only replaced after both fetch and derivation succeed,
// so a failed refresh never leaves totals inconsistent with the
// displayed rows.
func (c *Client) apply(expenses []domain.Expense, balance domain.Balance) (Store, error) {
	totals, err := DeriveTotals(expenses, balance)
	if err != nil {
		return Store{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = Store{
		Expenses:       expenses,
		Balance:        balance,
		TotalCost:      totals.TotalCost,
		CurrentBalance: totals.CurrentBalance,
	}

	return c.store, nil
}

// Load fetches expenses and balance concurrently and derives the totals.
func (c *Client) Load(ctx context.Context) (Store, error) {
	var (
		expenses []domain.Expense
		balance  domain.Balance
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, err = c.fetchExpenses(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		balance, err = c.fetchBalance(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Store{}, err
	}

	return c.apply(expenses, balance)
}

// Store returns a snapshot of the current store.
func (c *Client) Store() Store {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store
}

func (c *Client) refreshExpenses(ctx context.Context) (Store, error) {
	expenses, err := c.fetchExpenses(ctx)
	if err != nil {
		return Store{}, err
	}

	return c.apply(expenses, c.Store().Balance)
}

func (c *Client) refreshBalance(ctx context.Context) (Store, error) {
	balance, err := c.fetchBalance(ctx)
	if err != nil {
		return Store{}, err
	}

	return c.apply(c.Store().Expenses, balance)
}

type expenseBody struct {
	ID     int32  `json:"id,omitempty"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Date   string `json:"date,omitempty"`
}

// AddExpense creates an expense and refetches the expense list.
func (c *Client) AddExpense(ctx context.Context, name, amount, date string) (Store, error) {
	body := expenseBody{Name: name, Amount: amount, Date: date}

	if err := c.do(ctx, http.MethodPost, "/expenses", body, nil); err != nil {
		return Store{}, err
	}

	return c.refreshExpenses(ctx)
}

// UpdateExpense fully replaces an expense and refetches the expense list.
func (c *Client) UpdateExpense(ctx context.Context, form ExpenseForm) (Store, error) {
	body := expenseBody{ID: form.ID, Name: form.Name, Amount: form.Amount, Date: form.Date}

	if err := c.do(ctx, http.MethodPut, "/expenses", body, nil); err != nil {
		return Store{}, err
	}

	return c.refreshExpenses(ctx)
}

// DeleteExpense removes an expense and refetches the expense list.
func (c *Client) DeleteExpense(ctx context.Context, id int32) (Store, error) {
	body := struct {
		ID int32 `json:"id"`
	}{ID: id}

	if err := c.do(ctx, http.MethodDelete, "/expenses", body, nil); err != nil {
		return Store{}, err
	}

	return c.refreshExpenses(ctx)
}

// SetBalance upserts the starting balance and refetches it.
func (c *Client) SetBalance(ctx context.Context, amount string) (Store, error) {
	body := struct {
		Amount string `json:"amount"`
	}{Amount: amount}

	if err := c.do(ctx, http.MethodPut, "/balance", body, nil); err != nil {
		return Store{}, err
	}

	return c.refreshBalance(ctx)
}

// ClearBalance deletes the starting balance row and refetches, after
// which the current balance derives from a zero amount.
func (c *Client) ClearBalance(ctx context.Context) (Store, error) {
	if err := c.do(ctx, http.MethodDelete, "/balance", nil, nil); err != nil {
		return Store{}, err
	}

	return c.refreshBalance(ctx)
}
