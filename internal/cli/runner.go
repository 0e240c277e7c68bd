package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/basket/internal/cart"
	"github.com/Makepad-fr/basket/internal/config"
	"github.com/Makepad-fr/basket/internal/logging"
	"github.com/Makepad-fr/basket/internal/store/catalog"
	"github.com/Makepad-fr/basket/internal/ui"
)

var errUsage = errors.New("usage")

func usageErr(format string, a ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, a...))
}

// flags holds root flag values; set ones override the environment.
type flags struct {
	envFile      string
	catalogPath  string
	checkoutURL  string
	theme        string
	toastSeconds float64
	logFile      string
	verbose      bool
}

// app is what every subcommand runs against.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	out     io.Writer
	errOut  io.Writer
}

// Execute runs the command tree and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errOut: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
		return 2
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "basket",
		Short: "basket - a terminal shopping cart",
		Long: `basket shows a product catalog and keeps an in-memory shopping cart.

Run without arguments to open the interactive shop. The cart is never saved;
quitting prints the checkout link for whatever is in it.`,
		Example: `  basket
  basket render add:latte add:latte dec:latte add:mug
  basket checkout "?cart=|2:latte|1:mug"
  basket catalog --catalog products.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShop()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErr("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", "", "dotenv file to load (default .env if present)")
	pf.StringVar(&f.catalogPath, "catalog", "", "catalog file, YAML or JSON (env BASKET_CATALOG)")
	pf.StringVar(&f.checkoutURL, "checkout-url", "", "base URL the checkout query is appended to (env BASKET_CHECKOUT_URL)")
	pf.StringVar(&f.theme, "theme", "", "classic, neon or mono (env BASKET_THEME)")
	pf.Float64Var(&f.toastSeconds, "toast-seconds", 0, "seconds before the cart toast hides, 0 keeps it open (env BASKET_TOAST_SECONDS)")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this file (env BASKET_LOG_FILE)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newShopCmd(a),
		newRenderCmd(a),
		newCheckoutCmd(a),
		newCatalogCmd(a),
	)
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErr("unknown subcommand: %s", args[0])
	}
	return nil
}

func (a *app) init(cmd *cobra.Command, f *flags) error {
	var dotenv []string
	if f.envFile != "" {
		dotenv = append(dotenv, f.envFile)
	}
	cfg, err := config.Load(dotenv...)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("catalog") {
		cfg.CatalogPath = f.catalogPath
	}
	if pf.Changed("checkout-url") {
		cfg.CheckoutURL = f.checkoutURL
	}
	if pf.Changed("theme") {
		cfg.Theme = f.theme
	}
	if pf.Changed("toast-seconds") {
		if f.toastSeconds < 0 {
			return usageErr("--toast-seconds must not be negative")
		}
		cfg.ToastDelay = time.Duration(f.toastSeconds * float64(time.Second))
	}
	if pf.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if pf.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)

	a.logger, err = logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}

	if cfg.CatalogPath == "" {
		a.catalog = catalog.Default()
	} else if a.catalog, err = catalog.Load(cfg.CatalogPath); err != nil {
		return err
	}
	a.logger.Debug("configured",
		zap.String("catalog", cfg.CatalogPath),
		zap.Int("products", a.catalog.Len()),
		zap.String("theme", cfg.Theme),
		zap.Bool("dotenv", cfg.DotEnvLoaded),
	)
	return nil
}

// printPresenter writes every presented cart to the app's output.
func (a *app) printPresenter() cart.Presenter {
	return cart.PresenterFunc(func(s cart.Summary, err error) {
		fmt.Fprintln(a.out, ui.CartTable(s, s.CheckoutLink(a.cfg.CheckoutURL), -1))
		if err != nil {
			ui.Fail(a.errOut, err.Error())
		}
	})
}
