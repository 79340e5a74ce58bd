package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - categories: List catalog categories
// - products:   List products, optionally of one category
// - product:    Show one product
// - login:      Log in and persist the session
// - logout:     Forget the stored session
// - whoami:     Show the logged-in user
// - qr:         Render the UPI payment QR code of an order
// - payment-uri: Decode a scanned UPI payment URI

func main() {
	productsCmd := flag.NewFlagSet("products", flag.ExitOnError)
	productCmd := flag.NewFlagSet("product", flag.ExitOnError)
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	qrCmd := flag.NewFlagSet("qr", flag.ExitOnError)
	uriCmd := flag.NewFlagSet("payment-uri", flag.ExitOnError)

	productsCategory := productsCmd.Int64("category", 0, "Category id to filter by (0 lists every product)")

	productID := productCmd.Int64("id", 0, "Product id")

	loginUser := loginCmd.String("user", "", "Username or email")
	loginPassword := loginCmd.String("password", "", "Password")

	qrOrder := qrCmd.Int64("order", 0, "Order id")
	qrAmount := qrCmd.String("amount", "", "Amount in rupees, e.g. 1250.00")
	qrOutput := qrCmd.String("output", "payment-qr.png", "Output PNG file")

	uriValue := uriCmd.String("uri", "", "upi://pay URI read from a payment QR code")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Products: productsFlags{
			cmd:      productsCmd,
			category: productsCategory,
		},
		Product: productFlags{
			cmd: productCmd,
			id:  productID,
		},
		Login: loginFlags{
			cmd:      loginCmd,
			user:     loginUser,
			password: loginPassword,
		},
		QR: qrFlags{
			cmd:    qrCmd,
			order:  qrOrder,
			amount: qrAmount,
			output: qrOutput,
		},
		PaymentURI: paymentURIFlags{
			cmd: uriCmd,
			uri: uriValue,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Products productsFlags
	Product  productFlags
	Login    loginFlags
	QR       qrFlags

	PaymentURI paymentURIFlags
}

type productsFlags struct {
	cmd      *flag.FlagSet
	category *int64
}

type productFlags struct {
	cmd *flag.FlagSet
	id  *int64
}

type loginFlags struct {
	cmd      *flag.FlagSet
	user     *string
	password *string
}

type qrFlags struct {
	cmd    *flag.FlagSet
	order  *int64
	amount *string
	output *string
}

type paymentURIFlags struct {
	cmd *flag.FlagSet
	uri *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "categories", "products", "product", "login", "logout", "whoami", "qr", "payment-uri":
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}

	app, err := newApp(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer app.Close()

	switch os.Args[1] {
	case "categories":
		return app.runCategories(ctx)
	case "products":
		return handleProducts(ctx, app, flags)
	case "product":
		return handleProduct(ctx, app, flags)
	case "login":
		return handleLogin(ctx, app, flags)
	case "logout":
		return app.runLogout(ctx)
	case "whoami":
		return app.runWhoami(ctx)
	case "payment-uri":
		return handlePaymentURI(app, flags)
	default:
		return handleQR(ctx, app, flags)
	}
}

func handleProducts(ctx context.Context, app *app, flags *ctlFlags) error {
	if err := flags.Products.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse products flags")
	}

	var categoryID *int64
	if *flags.Products.category != 0 {
		categoryID = flags.Products.category
	}

	return app.runProducts(ctx, categoryID)
}

func handleProduct(ctx context.Context, app *app, flags *ctlFlags) error {
	if err := flags.Product.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse product flags")
	}

	if *flags.Product.id == 0 {
		return errors.New("--id flag is required for product command")
	}

	return app.runProduct(ctx, *flags.Product.id)
}

func handleLogin(ctx context.Context, app *app, flags *ctlFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	return app.runLogin(ctx, *flags.Login.user, *flags.Login.password)
}

func handleQR(ctx context.Context, app *app, flags *ctlFlags) error {
	if err := flags.QR.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse qr flags")
	}

	if *flags.QR.order == 0 || *flags.QR.amount == "" {
		return errors.New("--order and --amount flags are required for qr command")
	}

	return app.runQR(ctx, *flags.QR.order, *flags.QR.amount, *flags.QR.output)
}

func handlePaymentURI(app *app, flags *ctlFlags) error {
	if err := flags.PaymentURI.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse payment-uri flags")
	}

	if *flags.PaymentURI.uri == "" {
		return errors.New("--uri flag is required for payment-uri command")
	}

	return app.runPaymentURI(*flags.PaymentURI.uri)
}

func printUsage() {
	fmt.Println("Usage: storefrontctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  categories  List catalog categories")
	fmt.Println("  products    List products (-category to filter)")
	fmt.Println("  product     Show one product")
	fmt.Println("  login       Log in and store the session")
	fmt.Println("  logout      Forget the stored session")
	fmt.Println("  whoami      Show the logged-in user")
	fmt.Println("  qr          Write the UPI payment QR code of an order")
	fmt.Println("  payment-uri Decode a scanned UPI payment URI")
	fmt.Println("")
	fmt.Println("Use 'storefrontctl <command> -h' for more information about a command.")
}
