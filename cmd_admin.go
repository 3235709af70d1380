package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"jewelry_backend/internals/configs"
	"jewelry_backend/internals/features/content/resources"
	"jewelry_backend/internals/features/resource/schema"
	"jewelry_backend/pkg/adminclient"

	"github.com/spf13/cobra"
)

var (
	adminURL     string
	adminSession string
	adminTimeout time.Duration

	loginEmail    string
	loginPassword string

	listStatus string
	listSearch string
	listPage   int
	listLimit  int

	deleteYes bool
)

// adminCmd talks to a running server through pkg/adminclient.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage content on a running server",
	Long: `Manage content through the admin API of a running server.

Available subcommands:
  login  - sign in and keep the session on disk
  logout - forget the stored session
  list   - list the rows of a resource
  toggle - flip isActive on one row
  delete - delete one row

Resources: ` + strings.Join(resources.Names(), ", "),
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE:  runAdminLogin,
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAdminClient()
		if err != nil {
			return err
		}
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Println("✓ Signed out")
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List the rows of a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminList,
}

var adminToggleCmd = &cobra.Command{
	Use:   "toggle <resource> <id>",
	Short: "Flip isActive on one row",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminToggle,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <resource> <id>",
	Short: "Delete one row",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdminDelete,
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminURL, "url", "", "API base URL (default PUBLIC_BASE_URL or http://localhost:$PORT)")
	adminCmd.PersistentFlags().StringVar(&adminSession, "session", "", "session file (default <user config dir>/jewelry/session.json)")
	adminCmd.PersistentFlags().DurationVar(&adminTimeout, "timeout", adminclient.DefaultTimeout, "request timeout")

	adminLoginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email (default ADMIN_EMAIL)")
	adminLoginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password (default ADMIN_PASSWORD)")

	adminListCmd.Flags().StringVar(&listStatus, "status", "all", "all, active or inactive")
	adminListCmd.Flags().StringVar(&listSearch, "search", "", "search text")
	adminListCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	adminListCmd.Flags().IntVar(&listLimit, "limit", 20, "rows per page")

	adminDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "do not ask for confirmation")

	adminCmd.AddCommand(adminLoginCmd)
	adminCmd.AddCommand(adminLogoutCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminToggleCmd)
	adminCmd.AddCommand(adminDeleteCmd)
}

func sessionPath() (string, error) {
	if adminSession != "" {
		return adminSession, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "jewelry", "session.json"), nil
}

func baseURL() string {
	if adminURL != "" {
		return adminURL
	}
	if u := configs.GetEnv("PUBLIC_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:" + configs.GetEnv("PORT", "3000")
}

func newAdminClient() (*adminclient.Client, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	session, err := adminclient.NewSession(adminclient.NewFileStore(path))
	if err != nil {
		return nil, err
	}
	return adminclient.New(baseURL(), session,
		adminclient.WithTimeout(adminTimeout),
		adminclient.WithUnauthorizedHandler(func() {
			fmt.Fprintln(os.Stderr, "⚠️  session expired, run `jewelry admin login`")
		}),
	), nil
}

func findResource(name string) (*schema.Schema, error) {
	s, ok := resources.Find(name)
	if !ok {
		return nil, fmt.Errorf("unknown resource %q (one of: %s)", name, strings.Join(resources.Names(), ", "))
	}
	return s, nil
}

func requireLogin(c *adminclient.Client) error {
	if !c.Session.IsAuthenticated() {
		return errors.New("not signed in, run `jewelry admin login`")
	}
	return nil
}

func runAdminLogin(cmd *cobra.Command, args []string) error {
	email := loginEmail
	if email == "" {
		email = configs.GetEnv("ADMIN_EMAIL")
	}
	password := loginPassword
	if password == "" {
		password = configs.GetEnv("ADMIN_PASSWORD")
	}
	if email == "" || password == "" {
		return errors.New("--email and --password are required")
	}

	c, err := newAdminClient()
	if err != nil {
		return err
	}
	admin, err := c.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Signed in as %s (%s), session valid until %s\n",
		admin.Username, admin.Role, c.Session.ExpiresAt().Format(time.RFC1123))
	return nil
}

func runAdminList(cmd *cobra.Command, args []string) error {
	s, err := findResource(args[0])
	if err != nil {
		return err
	}
	c, err := newAdminClient()
	if err != nil {
		return err
	}
	if err := requireLogin(c); err != nil {
		return err
	}

	page := adminclient.NewListPage(c, s)
	page.SetStatus(listStatus)
	page.SetSearch(listSearch)
	page.SetPage(listPage)
	page.Query.Limit = listLimit
	if err := page.Load(cmd.Context()); err != nil {
		return err
	}
	if page.State() == adminclient.StateEmpty {
		fmt.Println(page.EmptyMessage())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tORDER\tCREATED")
	for _, card := range page.Cards() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", card.ID, truncate(card.Title, 48), card.Badge, card.SortOrder, card.Created)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	p := page.Pagination()
	fmt.Printf("\npage %d of %d, %d total\n", p.Page, max(p.TotalPages, 1), p.Total)
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func runAdminToggle(cmd *cobra.Command, args []string) error {
	s, err := findResource(args[0])
	if err != nil {
		return err
	}
	c, err := newAdminClient()
	if err != nil {
		return err
	}
	if err := requireLogin(c); err != nil {
		return err
	}
	rec, err := c.Resource(s.Name).Toggle(cmd.Context(), args[1])
	if err != nil {
		return err
	}
	state := "inactive"
	if rec.IsActive() {
		state = "active"
	}
	fmt.Printf("✓ %s %s is now %s\n", s.Singular, rec.ID(), state)
	return nil
}

func runAdminDelete(cmd *cobra.Command, args []string) error {
	s, err := findResource(args[0])
	if err != nil {
		return err
	}
	c, err := newAdminClient()
	if err != nil {
		return err
	}
	if err := requireLogin(c); err != nil {
		return err
	}

	rc := c.Resource(s.Name)
	rec, err := rc.Get(cmd.Context(), args[1])
	if err != nil {
		return err
	}
	if !deleteYes && !confirm(fmt.Sprintf("Delete %s %q?", strings.ToLower(s.Singular), rec.String(s.TitleField))) {
		return adminclient.ErrNotConfirmed
	}
	if err := rc.Delete(cmd.Context(), rec.ID()); err != nil {
		return err
	}
	fmt.Printf("✓ %s %s deleted\n", s.Singular, rec.ID())
	return nil
}

func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
