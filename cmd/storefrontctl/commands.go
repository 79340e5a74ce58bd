package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/util"

	"github.com/pkg/errors"
)

func (a *app) runCategories(ctx context.Context) error {
	categories, err := a.catalog.GetCategories(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
	}

	return w.Flush()
}

func (a *app) runProducts(ctx context.Context, categoryID *int64) error {
	products, err := a.catalog.GetProducts(ctx, categoryID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.CategoryName, a.formatPrice(p.Price), p.Stock)
	}

	return w.Flush()
}

func (a *app) runProduct(ctx context.Context, id int64) error {
	p, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(a.out, "  category: %s\n", p.CategoryName)
	fmt.Fprintf(a.out, "  price:    %s\n", a.formatPrice(p.Price))
	fmt.Fprintf(a.out, "  stock:    %d\n", p.Stock)
	if p.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", p.Description)
	}

	return nil
}

func (a *app) runLogin(ctx context.Context, user, password string) error {
	resp, err := a.auth.Login(ctx, entity.LoginInput{UsernameOrEmail: user, Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", resp.User.Username)

	return nil
}

func (a *app) runLogout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")

	return nil
}

func (a *app) runWhoami(ctx context.Context) error {
	user, ok := a.session.CurrentUser(ctx)
	if !ok {
		return errors.New("not logged in")
	}

	role := "customer"
	if user.IsAdmin() {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.Username, user.Email, role)
	if exp, ok := a.session.AccessTokenExpiry(ctx); ok {
		fmt.Fprintf(a.out, "access token: %s\n", util.FormatRemaining(exp, time.Now()))
	}

	return nil
}

func (a *app) runQR(ctx context.Context, orderID int64, amount, output string) error {
	total, err := entity.ParseMoney(amount)
	if err != nil {
		return errors.Wrap(err, "invalid --amount")
	}

	png, err := a.orders.PaymentQR(ctx, entity.Order{ID: orderID, TotalAmount: total})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, png, 0o600); err != nil {
		return errors.Wrap(err, "failed to write QR code")
	}
	fmt.Fprintf(a.out, "Wrote %s (%s)\n", output, util.FormatSize(len(png)))

	return nil
}

func (a *app) runPaymentURI(uri string) error {
	req, err := a.orders.ReadPaymentURI(uri)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "order:  %d\n", req.OrderID)
	fmt.Fprintf(a.out, "payee:  %s <%s>\n", req.PayeeName, req.PayeeAddress)
	fmt.Fprintf(a.out, "amount: %s\n", a.formatPrice(req.Amount))

	return nil
}

// formatPrice renders m in rupees with locale digit grouping.
func (a *app) formatPrice(m entity.Money) string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	return a.printer.Sprintf("%s₹%d.%02d", sign, v/100, v%100)
}
