package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkordes/nightlife-navigator/catalog"
	"github.com/pkordes/nightlife-navigator/internal/config"
	"github.com/pkordes/nightlife-navigator/internal/domain"
	"github.com/pkordes/nightlife-navigator/internal/fit"
	"github.com/pkordes/nightlife-navigator/internal/repo"
	"github.com/pkordes/nightlife-navigator/internal/service"
)

const usage = `usage: nightlife <command> [flags]

commands:
  summary  -group FILE                   show a group's averaged preferences
  rank     -group FILE [-page N -limit N] rank venues by group fit
  venues   [-lat L -lon L -span D]       reload and list venues for a map region
  reroute  -venue NAME [-minutes N]      simulate a wait spike and suggest an alternate
  checkin  -venue NAME [-qr FILE.png]    check in and optionally write the QR code
  export   -group FILE [-format csv|json] export the ranked catalog
`

// errUsage marks command-line mistakes; main exits 2 for these.
var errUsage = errors.New("usage")

// app wires the services for one CLI invocation.
type app struct {
	cfg      config.Config
	groups   *service.GroupService
	venues   *service.VenueService
	checkIns *service.CheckInService
	exports  *service.ExportService
	out      io.Writer
}

func newApp(cfg config.Config, out io.Writer) *app {
	var venueCatalog repo.VenueCatalog
	if cfg.CatalogPath != "" {
		venueCatalog = repo.NewFileCatalog(cfg.CatalogPath)
	} else {
		venueCatalog = repo.NewYAMLCatalog(catalog.Venues)
	}

	return &app{
		cfg:      cfg,
		groups:   service.NewGroupService(repo.NewGroupRepo()),
		venues:   service.NewVenueService(venueCatalog),
		checkIns: service.NewCheckInService(venueCatalog, nil),
		exports:  service.NewExportService(venueCatalog),
		out:      out,
	}
}

// run dispatches args[0] to its subcommand.
func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return flag.ErrHelp
	}

	a := newApp(cfg, out)
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "summary":
		return a.summary(ctx, rest)
	case "rank":
		return a.rank(ctx, rest)
	case "venues":
		return a.listVenues(ctx, rest)
	case "reroute":
		return a.reroute(ctx, rest)
	case "checkin":
		return a.checkIn(ctx, rest)
	case "export":
		return a.export(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseFlags parses args into fs. -h passes flag.ErrHelp through; any other
// parse failure is a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", errUsage, fs.Name(), err)
}

// loadGroup reads and registers the group from path.
func (a *app) loadGroup(ctx context.Context, path string) (domain.Group, domain.GroupSummary, error) {
	if path == "" {
		return domain.Group{}, domain.GroupSummary{}, fmt.Errorf("%w: -group is required", errUsage)
	}
	name, members, err := loadGroupFile(path)
	if err != nil {
		return domain.Group{}, domain.GroupSummary{}, err
	}
	g, err := a.groups.Create(ctx, name, members)
	if err != nil {
		return domain.Group{}, domain.GroupSummary{}, err
	}
	summary, err := a.groups.Summary(ctx, g.ID)
	if err != nil {
		return domain.Group{}, domain.GroupSummary{}, err
	}
	return g, summary, nil
}

func (a *app) summary(ctx context.Context, args []string) error {
	fs := a.flagSet("summary")
	groupPath := fs.String("group", "", "group YAML file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	g, s, err := a.loadGroup(ctx, *groupPath)
	if err != nil {
		return err
	}
	a.printSummary(g, s)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nMEMBER\tCOVER\tWAIT\tVIBE")
	for _, m := range g.Members {
		fmt.Fprintf(tw, "%s\t$%.0f\t%.0fm\t%.0f/100 (%s)\n", m.Name, m.MaxCover, m.MaxWaitMinutes, m.Vibe, fit.VibeLabel(m.Vibe))
	}
	return tw.Flush()
}

func (a *app) rank(ctx context.Context, args []string) error {
	fs := a.flagSet("rank")
	groupPath := fs.String("group", "", "group YAML file")
	page := fs.Int("page", 1, "page number, starting at 1")
	limit := fs.Int("limit", 20, "venues per page (max 100)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	g, s, err := a.loadGroup(ctx, *groupPath)
	if err != nil {
		return err
	}
	ranked, err := a.venues.Rank(ctx, s, domain.NewPaginationParams(page, limit))
	if err != nil {
		return err
	}

	a.printSummary(g, s)
	fmt.Fprintln(a.out)
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIT\tVENUE\tGENRE\tSTATUS\tWAIT\tDISTANCE")
	for _, v := range ranked.Venues {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", *v.GroupFit, v.Name, v.MusicGenre, v.Status, v.WaitTimeLabel, v.DistanceLabel)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	pages := (ranked.Total + ranked.Page.Limit - 1) / ranked.Page.Limit
	fmt.Fprintf(a.out, "page %d of %d (%d venues)\n", ranked.Page.Page, pages, ranked.Total)
	return nil
}

func (a *app) listVenues(ctx context.Context, args []string) error {
	fs := a.flagSet("venues")
	lat := fs.Float64("lat", 35.7796, "region center latitude")
	lon := fs.Float64("lon", -78.6382, "region center longitude")
	span := fs.Float64("span", 0.05, "region latitude/longitude span in degrees")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	venues, err := a.venues.ReloadRegion(ctx, domain.Region{
		Center:   domain.Coordinate{Lat: *lat, Lon: *lon},
		LatDelta: *span,
		LonDelta: *span,
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VENUE\tGENRE\tSOUND\tSTATUS\tWAIT\tDISTANCE\tLAT,LON")
	for _, v := range venues {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.4f,%.4f\n",
			v.Name, v.MusicGenre, v.SoundLevel, v.Status, v.WaitTimeLabel, v.DistanceLabel, v.Coordinate.Lat, v.Coordinate.Lon)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d spots\n", len(venues))
	return nil
}

func (a *app) reroute(ctx context.Context, args []string) error {
	fs := a.flagSet("reroute")
	venueName := fs.String("venue", "", "venue whose wait spikes")
	minutes := fs.Int("minutes", a.cfg.SpikeMinutes, "minutes added to the wait")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *venueName == "" {
		return fmt.Errorf("%w: -venue is required", errUsage)
	}

	v, err := a.venues.GetByName(ctx, *venueName)
	if err != nil {
		return err
	}
	r, err := a.venues.SimulateSpike(ctx, v.ID, *minutes)
	if errors.Is(err, domain.ErrNoAlternate) {
		fmt.Fprintf(a.out, "%s is now %s (%s)\nNo better option nearby.\n", r.Spiked.Name, r.Spiked.Status, r.Spiked.WaitTimeLabel)
		return nil
	}
	if err != nil {
		return err
	}

	alt := r.Alternate
	fmt.Fprintf(a.out, "%s is now %s (%s)\n", r.Spiked.Name, r.Spiked.Status, r.Spiked.WaitTimeLabel)
	fmt.Fprintf(a.out, "Better option nearby: %s (%s, %s, %s, %s)\n", alt.Name, alt.MusicGenre, alt.Status, alt.WaitTimeLabel, alt.DistanceLabel)
	return nil
}

func (a *app) checkIn(ctx context.Context, args []string) error {
	fs := a.flagSet("checkin")
	venueName := fs.String("venue", "", "venue to check in to")
	qrPath := fs.String("qr", "", "write the check-in QR code PNG to this file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *venueName == "" {
		return fmt.Errorf("%w: -venue is required", errUsage)
	}

	v, err := a.venues.GetByName(ctx, *venueName)
	if err != nil {
		return err
	}

	var c domain.CheckIn
	if *qrPath == "" {
		c, err = a.checkIns.CheckIn(ctx, v.ID)
		if err != nil {
			return err
		}
	} else {
		var png []byte
		c, png, err = a.checkIns.QRCode(ctx, v.ID, a.cfg.QRSize)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*qrPath, png, 0o644); err != nil {
			return fmt.Errorf("write QR code: %w", err)
		}
	}

	fmt.Fprintf(a.out, "Checked in! %s\n", c.VenueName)
	fmt.Fprintf(a.out, "Check-in time: %s\n", c.At.Local().Format(time.Kitchen))
	fmt.Fprintf(a.out, "Payload: %s\n", c.Payload)
	if *qrPath != "" {
		fmt.Fprintf(a.out, "QR code: %s\n", *qrPath)
	}
	return nil
}

func (a *app) printSummary(g domain.Group, s domain.GroupSummary) {
	fmt.Fprintf(a.out, "%s: %d members\n", g.Name, len(g.Members))
	fmt.Fprintf(a.out, "Avg max cover: $%.2f\n", s.AvgMaxCover)
	fmt.Fprintf(a.out, "Avg max wait:  %.2f min\n", s.AvgMaxWaitMinutes)
	fmt.Fprintf(a.out, "Avg vibe:      %.2f / 100 (%s)\n", s.AvgVibe, fit.VibeLabel(s.AvgVibe))
}
