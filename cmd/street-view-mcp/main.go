package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vlad-ds/street-view-mcp/internal/artifact"
	"github.com/vlad-ds/street-view-mcp/internal/config"
	"github.com/vlad-ds/street-view-mcp/internal/server"
	"github.com/vlad-ds/street-view-mcp/internal/streetview"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("street-view-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		case "fetch":
			os.Exit(cmdFetch(os.Args[2:]))
		case "metadata":
			os.Exit(cmdMetadata(os.Args[2:]))
		case "open":
			os.Exit(cmdOpen(os.Args[2:]))
		case "serve":
			os.Exit(cmdServe())
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
			usage()
			os.Exit(2)
		}
	}

	// No arguments: run the MCP server, as MCP clients invoke the binary bare.
	os.Exit(cmdServe())
}

func usage() {
	fmt.Println("street-view-mcp - MCP server and CLI for Google Street View")
	fmt.Println()
	fmt.Println("Usage: street-view-mcp [command]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve            Run the MCP server over stdin/stdout (default)")
	fmt.Println("  fetch            Fetch a Street View image to the output directory")
	fmt.Println("  metadata         Print panorama metadata as JSON")
	fmt.Println("  open             Open a saved image with the OS default viewer")
	fmt.Println("  version          Print version information")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  API_KEY                    Google Maps API key (required; .env supported)")
	fmt.Println("  STREET_VIEW_OUTPUT_DIR     Output directory (default: output)")
	fmt.Println("  STREET_VIEW_HTTP_TIMEOUT   API request timeout (default: 30s)")
	fmt.Println("  STREET_VIEW_LOG_LEVEL      debug|info|warn|error (default: info)")
	fmt.Println()
	fmt.Println("In serve mode the process communicates via MCP protocol over")
	fmt.Println("stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).")
}

// setup loads configuration and constructs the client and store. Logging is
// configured on stderr; in serve mode stdout belongs to the protocol.
func setup() (*streetview.Client, *artifact.Store, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	client := streetview.New(cfg.APIKey, streetview.WithTimeout(cfg.HTTPTimeout))
	store, err := artifact.NewStore(cfg.OutputDir)
	if err != nil {
		return nil, nil, nil, err
	}
	return client, store, logger, nil
}

func cmdServe() int {
	client, store, logger, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "street-view-mcp: %v\n", err)
		return 1
	}

	logger.Debug("starting mcp server", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	srv := server.New(client, store, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		return 1
	}
	return 0
}

// locationFlags holds the mutually exclusive selector flags shared by fetch
// and metadata.
type locationFlags struct {
	address *string
	latLng  *string
	pano    *string
}

func addLocationFlags(fs *flag.FlagSet) locationFlags {
	return locationFlags{
		address: fs.String("address", "", "street address to look up"),
		latLng:  fs.String("latlong", "", "comma-separated \"lat,lng\" coordinates"),
		pano:    fs.String("pano", "", "panorama ID"),
	}
}

func (f locationFlags) location() (streetview.Location, error) {
	set := 0
	for _, v := range []string{*f.address, *f.latLng, *f.pano} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return streetview.Location{}, fmt.Errorf("provide exactly one of --address, --latlong, --pano")
	}
	switch {
	case *f.address != "":
		return streetview.AddressLocation(*f.address), nil
	case *f.latLng != "":
		return streetview.ParseLatLng(*f.latLng)
	default:
		return streetview.PanoLocation(*f.pano), nil
	}
}

func cmdFetch(args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	loc := addLocationFlags(fs)
	output := fs.String("output", "", "filename to save the image as (required)")
	size := fs.String("size", streetview.DefaultSize, "image dimensions as \"widthxheight\"")
	heading := fs.Float64("heading", 0, "camera heading in degrees (0-360)")
	pitch := fs.Float64("pitch", 0, "camera pitch in degrees (-90 to 90)")
	fov := fs.Float64("fov", streetview.DefaultFOV, "field of view in degrees (10-120)")
	radius := fs.Int("radius", streetview.DefaultRadius, "search radius in meters")
	source := fs.String("source", string(streetview.SourceDefault), "source: default|outdoor")
	fs.Parse(args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "fetch: --output is required")
		return 2
	}
	location, err := loc.location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch: %v\n", err)
		return 2
	}

	client, store, logger, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "street-view-mcp: %v\n", err)
		return 1
	}
	if store.Exists(*output) {
		fmt.Fprintf(os.Stderr, "fetch: file %q already exists\n", *output)
		return 1
	}

	data, err := client.FetchImage(context.Background(), location, streetview.ImageOptions{
		Size:    *size,
		Heading: *heading,
		Pitch:   *pitch,
		FOV:     *fov,
		Radius:  *radius,
		Source:  streetview.Source(*source),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch: %v\n", err)
		return 1
	}

	path, err := store.Save(*output, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch: %v\n", err)
		return 1
	}

	logger.Info("saved street view image", "path", path, "bytes", len(data))
	fmt.Println(path)
	return 0
}

func cmdMetadata(args []string) int {
	fs := flag.NewFlagSet("metadata", flag.ExitOnError)
	loc := addLocationFlags(fs)
	radius := fs.Int("radius", streetview.DefaultRadius, "search radius in meters")
	source := fs.String("source", string(streetview.SourceDefault), "source: default|outdoor")
	fs.Parse(args)

	location, err := loc.location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "metadata: %v\n", err)
		return 2
	}

	client, _, _, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "street-view-mcp: %v\n", err)
		return 1
	}

	meta, err := client.FetchMetadata(context.Background(), location, streetview.MetadataOptions{
		Radius: *radius,
		Source: streetview.Source(*source),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "metadata: %v\n", err)
		return 1
	}

	out, _ := json.MarshalIndent(meta, "", "  ")
	fmt.Println(string(out))
	return 0
}

func cmdOpen(args []string) int {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	output := fs.String("output", "", "filename of a saved image (required)")
	fs.Parse(args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "open: --output is required")
		return 2
	}

	_, store, _, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "street-view-mcp: %v\n", err)
		return 1
	}
	if err := store.OpenViewer(*output); err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		return 1
	}
	return 0
}
