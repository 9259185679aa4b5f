package scrapingbee

import "context"

type YoutubeSearchParams struct {
	UploadDate      string
	Type            string
	Duration        string
	SortBy          string
	Hd              *bool
	Is4k            *bool
	Subtitles       *bool
	CreativeCommons *bool
	Live            *bool
	Is360           *bool
	Is3d            *bool
	Hdr             *bool
	Location        *bool
	Vr180           *bool
}

func (c *Client) YoutubeSearch(ctx context.Context, search string, p YoutubeSearchParams) (Response, error) {
	q := query{}
	q.setStr("search", search)
	q.setStr("upload_date", p.UploadDate)
	q.setStr("type", p.Type)
	q.setStr("duration", p.Duration)
	q.setStr("sort_by", p.SortBy)
	q.setBool("hd", p.Hd)
	q.setBool("4k", p.Is4k)
	q.setBool("subtitles", p.Subtitles)
	q.setBool("creative_commons", p.CreativeCommons)
	q.setBool("live", p.Live)
	q.setBool("360", p.Is360)
	q.setBool("3d", p.Is3d)
	q.setBool("hdr", p.Hdr)
	q.setBool("location", p.Location)
	q.setBool("vr180", p.Vr180)
	return c.get(ctx, "/youtube/search", q)
}

func (c *Client) YoutubeMetadata(ctx context.Context, videoId string) (Response, error) {
	q := query{}
	q.setStr("video_id", videoId)
	return c.get(ctx, "/youtube/metadata", q)
}

type YoutubeTranscriptParams struct {
	Language         string
	TranscriptOrigin string
}

func (c *Client) YoutubeTranscript(ctx context.Context, videoId string, p YoutubeTranscriptParams) (Response, error) {
	q := query{}
	q.setStr("video_id", videoId)
	q.setStr("language", p.Language)
	q.setStr("transcript_origin", p.TranscriptOrigin)
	return c.get(ctx, "/youtube/transcript", q)
}

func (c *Client) YoutubeTrainability(ctx context.Context, videoId string) (Response, error) {
	q := query{}
	q.setStr("video_id", videoId)
	return c.get(ctx, "/youtube/trainability", q)
}
