package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durable-fastener/durable-cms-backend/models"
)

func strPtr(v string) *string { return &v }

func TestBlogContentIsSanitized(t *testing.T) {
	s := newTestServices(t, nil, nil)

	blog, err := s.Content.CreateBlog(ctx(), models.BlogRequest{
		Title:   "Choosing anchors",
		Content: `<p onclick="x()">Use <b>sleeve</b> anchors</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, blog.Content, "<script>")
	assert.NotContains(t, blog.Content, "onclick")
	assert.Contains(t, blog.Content, "<b>sleeve</b>")

	updated, err := s.Content.UpdateBlog(ctx(), blog.ID, models.BlogRequest{Title: "Choosing anchors, revised", Content: "<p>ok</p>"})
	require.NoError(t, err)
	assert.WithinDuration(t, blog.CreatedAt, updated.CreatedAt, time.Millisecond)
}

func TestEnquiryLifecycle(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Content.CreateEnquiry(ctx(), models.EnquiryRequest{FirstName: "Asha", Email: "asha@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	e, err := s.Content.CreateEnquiry(ctx(), models.EnquiryRequest{
		FirstName: "Asha",
		Email:     "asha@example.com",
		Message:   "Need 10k M8 bolts",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusNew, e.Status)

	stats, err := s.Content.DashboardStats(ctx())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.NewEnquiries)

	require.NoError(t, s.Content.UpdateEnquiryStatus(ctx(), e.ID, models.EnquiryStatusRead))

	list, page, err := s.Content.ListEnquiries(ctx(), models.EnquiryStatusNew, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 0, page.Total)

	list, _, err = s.Content.ListEnquiries(ctx(), "", 1, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.EnquiryStatusRead, list[0].Status)
}

func TestSiteContentSingleton(t *testing.T) {
	s := newTestServices(t, nil, nil)

	content, err := s.Content.SiteContent(ctx())
	require.NoError(t, err)
	assert.Equal(t, models.SiteContentID, content.ID)
	assert.Empty(t, content.HeroBg)

	_, err = s.Content.UpdateSiteContent(ctx(), models.UpdateSiteContentRequest{HeroBg: strPtr(" https://img/hero.jpg ")})
	require.NoError(t, err)
	_, err = s.Content.UpdateSiteContent(ctx(), models.UpdateSiteContentRequest{AboutImg: strPtr("https://img/about.jpg")})
	require.NoError(t, err)

	content, err = s.Content.SiteContent(ctx())
	require.NoError(t, err)
	assert.Equal(t, "https://img/hero.jpg", content.HeroBg)
	assert.Equal(t, "https://img/about.jpg", content.AboutImg)

	var rows int64
	require.NoError(t, s.Content.db.Model(&models.SiteContent{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestUpsertSiteLink(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Content.UpsertSiteLink(ctx(), models.SiteLinkRequest{KeyName: "whatsapp", URL: "https://wa.me/1"})
	require.NoError(t, err)
	_, err = s.Content.UpsertSiteLink(ctx(), models.SiteLinkRequest{KeyName: "whatsapp", URL: "https://wa.me/2"})
	require.NoError(t, err)

	links, err := s.Content.ListSiteLinks(ctx())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://wa.me/2", links[0].URL)

	require.NoError(t, s.Content.DeleteSiteLink(ctx(), "whatsapp"))
	assert.ErrorIs(t, s.Content.DeleteSiteLink(ctx(), "whatsapp"), ErrNotFound)
}

func TestGalleryFiltersByTag(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Content.CreateGalleryItem(ctx(), models.GalleryItemRequest{Tag: "Events", ImageURL: "https://img/1.jpg"})
	require.NoError(t, err)
	_, err = s.Content.CreateGalleryItem(ctx(), models.GalleryItemRequest{Tag: "Factory", ImageURL: "https://img/2.jpg"})
	require.NoError(t, err)

	items, err := s.Content.ListGallery(ctx(), "Events")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://img/1.jpg", items[0].ImageURL)

	all, err := s.Content.ListGallery(ctx(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
