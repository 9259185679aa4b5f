package commands

import (
	"context"

	"scrapingbee-cli/lib/scrapingbee"

	"github.com/spf13/cobra"
)

var (
	youtubeSearchParams    scrapingbee.YoutubeSearchParams
	youtubeSearchInputFile string

	youtubeMetadataInputFile string

	youtubeTranscriptParams    scrapingbee.YoutubeTranscriptParams
	youtubeTranscriptInputFile string

	youtubeTrainabilityInputFile string
)

func init() {
	f := youtubeSearchCmd.Flags()
	p := &youtubeSearchParams
	f.StringVar(&youtubeSearchInputFile, "input-file", "", "Batch: one query per line")
	f.StringVar(&p.UploadDate, "upload-date", "", "Upload date filter")
	f.StringVar(&p.Type, "type", "", "Result type filter")
	f.StringVar(&p.Duration, "duration", "", "Duration filter")
	f.StringVar(&p.SortBy, "sort-by", "", "Sort order")
	boolFlag(f, &p.Hd, "hd", "HD videos only")
	boolFlag(f, &p.Is4k, "4k", "4K videos only")
	boolFlag(f, &p.Subtitles, "subtitles", "Videos with subtitles only")
	boolFlag(f, &p.CreativeCommons, "creative-commons", "Creative Commons videos only")
	boolFlag(f, &p.Live, "live", "Live videos only")
	boolFlag(f, &p.Is360, "360", "360 degree videos only")
	boolFlag(f, &p.Is3d, "3d", "3D videos only")
	boolFlag(f, &p.Hdr, "hdr", "HDR videos only")
	boolFlag(f, &p.Location, "location", "Videos with a location only")
	boolFlag(f, &p.Vr180, "vr180", "VR180 videos only")
	rootCmd.AddCommand(youtubeSearchCmd)

	youtubeMetadataCmd.Flags().StringVar(&youtubeMetadataInputFile, "input-file", "", "Batch: one video ID per line")
	rootCmd.AddCommand(youtubeMetadataCmd)

	f = youtubeTranscriptCmd.Flags()
	f.StringVar(&youtubeTranscriptInputFile, "input-file", "", "Batch: one video ID per line")
	f.StringVar(&youtubeTranscriptParams.Language, "language", "", "Transcript language")
	f.StringVar(&youtubeTranscriptParams.TranscriptOrigin, "transcript-origin", "", "auto_generated or uploader_provided")
	rootCmd.AddCommand(youtubeTranscriptCmd)

	youtubeTrainabilityCmd.Flags().StringVar(&youtubeTrainabilityInputFile, "input-file", "", "Batch: one video ID per line")
	rootCmd.AddCommand(youtubeTrainabilityCmd)
}

var youtubeSearchCmd = &cobra.Command{
	Use:   "youtube-search [query]",
	Short: "Search YouTube.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := youtubeSearchParams
		return runEndpoint(cmd, request{
			noun:      "search query",
			input:     firstArg(args),
			inputFile: youtubeSearchInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.YoutubeSearch(ctx, input, params)
			},
		})
	},
}

var youtubeMetadataCmd = &cobra.Command{
	Use:   "youtube-metadata [video-id]",
	Short: "Fetch the metadata of a YouTube video.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint(cmd, request{
			noun:      "video ID",
			input:     firstArg(args),
			inputFile: youtubeMetadataInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.YoutubeMetadata(ctx, input)
			},
		})
	},
}

var youtubeTranscriptCmd = &cobra.Command{
	Use:   "youtube-transcript [video-id]",
	Short: "Fetch the transcript of a YouTube video.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := youtubeTranscriptParams
		return runEndpoint(cmd, request{
			noun:      "video ID",
			input:     firstArg(args),
			inputFile: youtubeTranscriptInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.YoutubeTranscript(ctx, input, params)
			},
		})
	},
}

var youtubeTrainabilityCmd = &cobra.Command{
	Use:   "youtube-trainability [video-id]",
	Short: "Check whether a YouTube video can be used for training.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEndpoint(cmd, request{
			noun:      "video ID",
			input:     firstArg(args),
			inputFile: youtubeTrainabilityInputFile,
			call: func(ctx context.Context, client *scrapingbee.Client, input string) (scrapingbee.Response, error) {
				return client.YoutubeTrainability(ctx, input)
			},
		})
	},
}
