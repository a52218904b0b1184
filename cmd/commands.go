package main

import (
	"assetconsole/console"
	"assetconsole/models"
	"context"
	"flag"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var errUsage = errors.New("invalid command")

type command struct {
	admin bool
	run   func(ctx context.Context, c *console.Console, args []string) (interface{}, error)
}

var topLevel = map[string]command{
	"login":     {run: login},
	"register":  {run: register},
	"logout":    {run: logout},
	"whoami":    {run: whoami},
	"dashboard": {run: dashboard},
}

var groups = map[string]map[string]command{
	"assets": {
		"list":    {run: listAssets},
		"get":     {run: getAsset},
		"create":  {admin: true, run: createAsset},
		"update":  {admin: true, run: updateAsset},
		"status":  {admin: true, run: updateAssetStatus},
		"delete":  {admin: true, run: deleteAsset},
		"request": {run: requestAsset},
	},
	"requests": {
		"mine":    {run: myRequests},
		"list":    {admin: true, run: listRequests},
		"approve": {admin: true, run: decideRequest(models.RequestApproved)},
		"reject":  {admin: true, run: decideRequest(models.RequestRejected)},
	},
	"users": {
		"list":         {admin: true, run: listUsers},
		"get":          {run: getUser},
		"update":       {run: updateUser},
		"upload-image": {run: uploadProfileImage},
		"delete-image": {run: deleteProfileImage},
	},
	"categories": {
		"list":   {run: listCategories},
		"all":    {admin: true, run: allCategories},
		"get":    {run: getCategory},
		"create": {admin: true, run: createCategory},
		"update": {admin: true, run: updateCategory},
		"delete": {admin: true, run: deleteCategory},
		"toggle": {admin: true, run: toggleCategory},
		"browse": {admin: true, run: browseCategories},
	},
}

func run(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	cmd, ok := topLevel[args[0]]
	rest := args[1:]
	if !ok {
		group, found := groups[args[0]]
		if !found || len(rest) == 0 {
			return nil, errors.Wrap(errUsage, args[0])
		}
		if cmd, ok = group[rest[0]]; !ok {
			return nil, errors.Wrapf(errUsage, "%s %s", args[0], rest[0])
		}
		rest = rest[1:]
	}

	if cmd.admin {
		admin, err := c.IsAdmin(ctx)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, errors.New("this command requires an administrator account")
		}
	}
	return cmd.run(ctx, c, rest)
}

func newFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// setFlags reports which flags were given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func optional(set map[string]bool, name, value string) *string {
	if !set[name] {
		return nil
	}
	return &value
}

func requireID(id string) error {
	if id == "" {
		return errors.Wrap(errUsage, "-id is required")
	}
	return nil
}

func login(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.Login(ctx, models.LoginReq{Email: *email, Password: *password})
}

func register(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("register")
	req := models.RegisterReq{}
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FirstName, "first", "", "first name")
	fs.StringVar(&req.LastName, "last", "", "last name")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.Register(ctx, req)
}

func logout(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	if err := c.Logout(ctx); err != nil {
		return nil, err
	}
	return map[string]string{"message": "signed out"}, nil
}

func whoami(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	stored, err := c.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("not signed in")
	}
	return c.CurrentUser(ctx)
}

func dashboard(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	return c.Dashboard(ctx)
}

func pageFlags(fs *flag.FlagSet) (*int, *int) {
	return fs.Int("page", 1, "page number"), fs.Int("size", 10, "page size")
}

func listAssets(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets list")
	page, size := pageFlags(fs)
	search := fs.String("search", "", "name or serial number")
	status := fs.String("status", "", "Available|Assigned|Maintenance|Retired")
	category := fs.String("category", "", "category id or name")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.Assets(ctx, models.AssetFilter{Page: *page, PageSize: *size, Search: *search, Status: models.AssetStatus(*status), Category: *category})
}

func getAsset(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets get")
	id := fs.String("id", "", "asset id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := requireID(*id); err != nil {
		return nil, err
	}
	asset, err := c.Asset(ctx, *id)
	if err != nil || asset == nil {
		return asset, err
	}
	return struct {
		*models.Asset
		ImageLink string `json:"imageLink"`
	}{asset, c.ImageURL(asset.ImageURL)}, nil
}

func openImage(path string) (*models.ImageFile, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open image")
	}
	return &models.ImageFile{
		Name:        filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        io.Reader(f),
	}, func() { f.Close() }, nil
}

func createAsset(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets create")
	req := models.CreateAssetReq{}
	fs.StringVar(&req.Name, "name", "", "asset name")
	fs.StringVar(&req.CategoryID, "category", "", "category id")
	fs.StringVar(&req.SerialNumber, "serial", "", "serial number")
	fs.StringVar(&req.PurchaseDate, "purchased", "", "purchase date (YYYY-MM-DD)")
	image := fs.String("image", "", "image file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	img, closeImage, err := openImage(*image)
	if err != nil {
		return nil, err
	}
	defer closeImage()
	req.Image = img
	return c.CreateAsset(ctx, req)
}

func updateAsset(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets update")
	id := fs.String("id", "", "asset id")
	name := fs.String("name", "", "asset name")
	category := fs.String("category", "", "category id")
	serial := fs.String("serial", "", "serial number")
	purchased := fs.String("purchased", "", "purchase date (YYYY-MM-DD)")
	image := fs.String("image", "", "image file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := requireID(*id); err != nil {
		return nil, err
	}
	set := setFlags(fs)
	img, closeImage, err := openImage(*image)
	if err != nil {
		return nil, err
	}
	defer closeImage()

	req := models.UpdateAssetReq{
		Name:         optional(set, "name", *name),
		CategoryID:   optional(set, "category", *category),
		SerialNumber: optional(set, "serial", *serial),
		PurchaseDate: optional(set, "purchased", *purchased),
		Image:        img,
	}
	if req.IsEmpty() {
		return nil, errors.Wrap(errUsage, "nothing to update")
	}
	return c.UpdateAsset(ctx, *id, req)
}

func updateAssetStatus(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets status")
	id := fs.String("id", "", "asset id")
	status := fs.String("status", "", "Available|Assigned|Maintenance|Retired")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := requireID(*id); err != nil {
		return nil, err
	}
	return c.UpdateAssetStatus(ctx, *id, models.AssetStatus(*status))
}

func deleteAsset(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets delete")
	id := fs.String("id", "", "asset id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := requireID(*id); err != nil {
		return nil, err
	}
	if err := c.DeleteAsset(ctx, *id); err != nil {
		return nil, err
	}
	return map[string]string{"message": "asset deleted"}, nil
}

func requestAsset(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("assets request")
	id := fs.String("id", "", "asset id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := requireID(*id); err != nil {
		return nil, err
	}
	return c.RequestAsset(ctx, *id)
}

func myRequests(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("requests mine")
	page, size := pageFlags(fs)
	status := fs.String("status", "", "Pending|Approved|Rejected")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.MyAssetRequests(ctx, models.AssetRequestFilter{Page: *page, PageSize: *size, Status: models.AssetRequestStatus(*status)})
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. A calendar date
// used as an upper bound covers the whole day.
func parseDate(value string, upper bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		if upper {
			t = t.Add(24*time.Hour - time.Millisecond)
		}
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	return nil, errors.Wrapf(errUsage, "invalid date %q", value)
}

func listRequests(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("requests list")
	page, size := pageFlags(fs)
	status := fs.String("status", "", "Pending|Approved|Rejected")
	search := fs.String("search", "", "asset or user")
	bounds := map[string]*string{}
	for _, name := range []string{"requested-from", "requested-to", "processed-from", "processed-to"} {
		bounds[name] = fs.String(name, "", "date (YYYY-MM-DD)")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	filter := models.AdminAssetRequestFilter{Page: *page, PageSize: *size, Status: models.AssetRequestStatus(*status), Search: *search}
	targets := map[string]**time.Time{
		"requested-from": &filter.RequestedFrom,
		"requested-to":   &filter.RequestedTo,
		"processed-from": &filter.ProcessedFrom,
		"processed-to":   &filter.ProcessedTo,
	}
	for name, dst := range targets {
		t, err := parseDate(*bounds[name], strings.HasSuffix(name, "-to"))
		if err != nil {
			return nil, err
		}
		*dst = t
	}
	return c.AssetRequests(ctx, filter)
}

func decideRequest(status models.AssetRequestStatus) func(context.Context, *console.Console, []string) (interface{}, error) {
	return func(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
		fs := newFlags("requests decide")
		id := fs.String("id", "", "asset request id")
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if err := requireID(*id); err != nil {
			return nil, err
		}
		return c.DecideAssetRequest(ctx, *id, status)
	}
}

func listUsers(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("users list")
	page, size := pageFlags(fs)
	search := fs.String("search", "", "name or email")
	role := fs.String("role", "", "User|Admin (filters the fetched page)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	users, err := c.Users(ctx, models.UserFilter{Page: *page, PageSize: *size, Search: *search})
	if err != nil {
		return nil, err
	}
	users.Data = console.FilterUsers(users.Data, models.Role(*role))
	return users, nil
}

// userID defaults to the signed-in user.
func userID(ctx context.Context, c *console.Console, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	user, err := c.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.New("not signed in")
	}
	return user.ID, nil
}

func getUser(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("users get")
	id := fs.String("id", "", "user id (default: yourself)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	target, err := userID(ctx, c, *id)
	if err != nil {
		return nil, err
	}
	return c.User(ctx, target)
}

func updateUser(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("users update")
	id := fs.String("id", "", "user id (default: yourself)")
	email := fs.String("email", "", "email")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	role := fs.String("role", "", "User|Admin")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	target, err := userID(ctx, c, *id)
	if err != nil {
		return nil, err
	}
	set := setFlags(fs)
	req := models.UpdateUserReq{
		Email:     optional(set, "email", *email),
		FirstName: optional(set, "first", *first),
		LastName:  optional(set, "last", *last),
	}
	if set["role"] {
		r := models.Role(*role)
		req.Role = &r
	}
	return c.UpdateUser(ctx, target, req)
}

func uploadProfileImage(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("users upload-image")
	id := fs.String("id", "", "user id (default: yourself)")
	file := fs.String("file", "", "image file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	target, err := userID(ctx, c, *id)
	if err != nil {
		return nil, err
	}
	img, closeImage, err := openImage(*file)
	if err != nil {
		return nil, err
	}
	defer closeImage()
	if img == nil {
		return nil, errors.Wrap(errUsage, "-file is required")
	}
	return c.UploadProfileImage(ctx, target, *img)
}

func deleteProfileImage(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("users delete-image")
	id := fs.String("id", "", "user id (default: yourself)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	target, err := userID(ctx, c, *id)
	if err != nil {
		return nil, err
	}
	if err := c.DeleteProfileImage(ctx, target); err != nil {
		return nil, err
	}
	return map[string]string{"message": "profile image deleted"}, nil
}

func categoryFilter(name string, args []string) (models.CategoryFilter, error) {
	fs := newFlags(name)
	page, size := pageFlags(fs)
	search := fs.String("search", "", "name or description")
	status := fs.String("status", "", "ACTIVE|INACTIVE")
	if err := fs.Parse(args); err != nil {
		return models.CategoryFilter{}, err
	}
	return models.CategoryFilter{Page: *page, PageSize: *size, Search: *search, Status: models.CategoryStatus(*status)}, nil
}

func listCategories(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	filter, err := categoryFilter("categories list", args)
	if err != nil {
		return nil, err
	}
	return c.Categories(ctx, filter)
}

func allCategories(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	filter, err := categoryFilter("categories all", args)
	if err != nil {
		return nil, err
	}
	return c.AllCategories(ctx, filter)
}

func categoryID(name string, args []string) (string, error) {
	fs := newFlags(name)
	id := fs.String("id", "", "category id")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *id, requireID(*id)
}

func getCategory(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	id, err := categoryID("categories get", args)
	if err != nil {
		return nil, err
	}
	return c.Category(ctx, id)
}

func createCategory(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("categories create")
	req := models.CreateCategoryReq{}
	fs.StringVar(&req.Name, "name", "", "category name")
	fs.StringVar(&req.Description, "description", "", "category description")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.CreateCategory(ctx, req)
}

func updateCategory(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("categories update")
	id := fs.String("id", "", "category id")
	name := fs.String("name", "", "category name")
	description := fs.String("description", "", "category description")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := requireID(*id); err != nil {
		return nil, err
	}
	set := setFlags(fs)
	return c.UpdateCategory(ctx, *id, models.UpdateCategoryReq{
		Name:        optional(set, "name", *name),
		Description: optional(set, "description", *description),
	})
}

func deleteCategory(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	id, err := categoryID("categories delete", args)
	if err != nil {
		return nil, err
	}
	if err := c.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}
	return map[string]string{"message": "category deleted"}, nil
}

func toggleCategory(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	id, err := categoryID("categories toggle", args)
	if err != nil {
		return nil, err
	}
	return c.ToggleCategoryStatus(ctx, id)
}

func browseCategories(ctx context.Context, c *console.Console, args []string) (interface{}, error) {
	fs := newFlags("categories browse")
	search := fs.String("search", "", "name or description")
	status := fs.String("status", "", "ACTIVE|INACTIVE")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c.BrowseCategories(ctx, *search, models.CategoryStatus(*status), *page)
}
