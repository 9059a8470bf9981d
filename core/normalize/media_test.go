package normalize

import (
	"testing"

	"notegrab-api/core/domain"
)

func imagePayload(id string, images ...domain.ImageInfo) *domain.FeedPayload {
	return &domain.FeedPayload{
		Items: []domain.FeedItem{{
			ID:        id,
			ModelType: domain.ModelTypeNote,
			NoteCard:  &domain.NoteCard{ImageList: images},
		}},
	}
}

func TestMediaItems_NumbersImagesInSourceOrder(t *testing.T) {
	payload := imagePayload("note1",
		domain.ImageInfo{URLDefault: "https://cdn.example.com/a.jpg"},
		domain.ImageInfo{URLDefault: "https://cdn.example.com/b.png"},
		domain.ImageInfo{URLDefault: "https://cdn.example.com/c"},
	)

	items := MediaItems(payload, "note1")

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	wantNames := []string{"image_1.jpg", "image_2.png", "image_3.webp"}
	for i, want := range wantNames {
		if items[i].Filename != want {
			t.Errorf("item %d filename = %s, want %s", i, items[i].Filename, want)
		}
		if items[i].Type != domain.MediaTypeImage {
			t.Errorf("item %d should be an image", i)
		}
	}
}

func TestMediaItems_FilenamesUniqueWithinBatch(t *testing.T) {
	payload := imagePayload("note1",
		domain.ImageInfo{URLDefault: "https://cdn.example.com/a.jpg"},
		domain.ImageInfo{URLDefault: "https://cdn.example.com/a.jpg"},
	)

	items := MediaItems(payload, "note1")

	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.Filename] {
			t.Errorf("duplicate filename %s", item.Filename)
		}
		seen[item.Filename] = true
	}
}

func TestMediaItems_PrefersQualityMarkedVariant(t *testing.T) {
	payload := imagePayload("note1", domain.ImageInfo{
		URLDefault: "https://cdn.example.com/default.jpg",
		InfoList: []domain.ImageVariant{
			{ImageScene: "WB_PRV", URL: "https://cdn.example.com/preview.jpg"},
			{ImageScene: domain.ImageSceneDefault, URL: "https://cdn.example.com/full.jpg"},
		},
	})

	items := MediaItems(payload, "note1")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].URL != "https://cdn.example.com/full.jpg" {
		t.Errorf("should prefer the quality-marked variant, got %s", items[0].URL)
	}
}

func TestMediaItems_FallsBackToDefaultURL(t *testing.T) {
	payload := imagePayload("note1", domain.ImageInfo{
		URLDefault: "https://cdn.example.com/default.jpg",
		InfoList: []domain.ImageVariant{
			{ImageScene: "WB_PRV", URL: "https://cdn.example.com/preview.jpg"},
		},
	})

	items := MediaItems(payload, "note1")

	if len(items) != 1 || items[0].URL != "https://cdn.example.com/default.jpg" {
		t.Errorf("should fall back to the default URL, got %+v", items)
	}
}

func TestMediaItems_ExtensionBySubstring(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/x.JPEG?size=big", "image_1.jpg"},
		{"https://cdn.example.com/x.png!large", "image_1.png"},
		{"https://cdn.example.com/x?format=heic", "image_1.webp"},
	}

	for _, tt := range tests {
		payload := imagePayload("n", domain.ImageInfo{URLDefault: tt.url})
		items := MediaItems(payload, "n")
		if len(items) != 1 || items[0].Filename != tt.want {
			t.Errorf("url %s: got %+v, want filename %s", tt.url, items, tt.want)
		}
	}
}

func videoPayload(id string, streams *domain.VideoStreams) *domain.FeedPayload {
	return &domain.FeedPayload{
		Items: []domain.FeedItem{{
			ID:        id,
			ModelType: domain.ModelTypeNote,
			NoteCard: &domain.NoteCard{
				Video: &domain.VideoInfo{Media: &domain.VideoMedia{Stream: streams}},
			},
		}},
	}
}

func TestMediaItems_PrefersPrimaryCodecFamily(t *testing.T) {
	payload := videoPayload("note1", &domain.VideoStreams{
		H264: []domain.VideoStream{
			{MasterURL: "https://v.example.com/h264_small?sign=abc", Width: 720, Height: 1280},
		},
		H265: []domain.VideoStream{
			{MasterURL: "https://v.example.com/h265_big?sign=def", Width: 1080, Height: 1920},
		},
	})

	items := MediaItems(payload, "note1")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].URL != "https://v.example.com/h264_small?sign=abc" {
		t.Errorf("h264 must win over h265 even at lower resolution, got %s", items[0].URL)
	}
	if items[0].Filename != "video_1.mp4" {
		t.Errorf("video filename = %s", items[0].Filename)
	}
}

func TestMediaItems_SelectsLargestArea(t *testing.T) {
	payload := videoPayload("note1", &domain.VideoStreams{
		H264: []domain.VideoStream{
			{MasterURL: "https://v.example.com/sd", Width: 540, Height: 960},
			{MasterURL: "https://v.example.com/hd", Width: 1080, Height: 1920},
			{MasterURL: "https://v.example.com/md", Width: 720, Height: 1280},
		},
	})

	items := MediaItems(payload, "note1")

	if len(items) != 1 || items[0].URL != "https://v.example.com/hd" {
		t.Errorf("should select the largest-area stream, got %+v", items)
	}
}

func TestMediaItems_ResolutionTieKeepsFirst(t *testing.T) {
	payload := videoPayload("note1", &domain.VideoStreams{
		H265: []domain.VideoStream{
			{MasterURL: "https://v.example.com/first", Width: 1080, Height: 1920},
			{MasterURL: "https://v.example.com/second", Width: 1920, Height: 1080},
		},
	})

	items := MediaItems(payload, "note1")

	if len(items) != 1 || items[0].URL != "https://v.example.com/first" {
		t.Errorf("equal areas must resolve to the first entry, got %+v", items)
	}
}

func TestMediaItems_PreservesSigningQuery(t *testing.T) {
	url := "https://v.example.com/stream/master.m3u8?sign=a1b2&t=1700000000&u=xyz"
	payload := videoPayload("note1", &domain.VideoStreams{
		H264: []domain.VideoStream{{MasterURL: url, Width: 1080, Height: 1920}},
	})

	items := MediaItems(payload, "note1")

	if len(items) != 1 || items[0].URL != url {
		t.Errorf("video URL must be preserved byte-for-byte, got %+v", items)
	}
}

func TestMediaItems_DefensiveOnMalformedPayloads(t *testing.T) {
	payloads := []*domain.FeedPayload{
		nil,
		{},
		{Items: []domain.FeedItem{{ID: "other"}}},
		{Items: []domain.FeedItem{{ID: "note1"}}}, // no note card
		videoPayload("note1", nil),
		videoPayload("note1", &domain.VideoStreams{}),
	}

	for i, payload := range payloads {
		items := MediaItems(payload, "note1")
		if items == nil {
			t.Errorf("payload %d: result should be an empty slice, not nil", i)
		}
		if len(items) != 0 {
			t.Errorf("payload %d: expected no items, got %d", i, len(items))
		}
	}
}
