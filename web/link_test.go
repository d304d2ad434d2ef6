package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavLink(t *testing.T) {
	html, err := navLink("/my-listings", "My listings")
	require.NoError(t, err)
	assert.Equal(t, `<a href="/my-listings">My listings</a>`, string(html))
}

func TestNavLinkPassesAttributesThrough(t *testing.T) {
	html, err := navLink("/listings/new", "Post", "class", "cta", "data-testid", "new-link")
	require.NoError(t, err)
	assert.Equal(t, `<a href="/listings/new" class="cta" data-testid="new-link">Post</a>`, string(html))
}

func TestNavLinkEscapesTextAndHref(t *testing.T) {
	html, err := navLink(`/q?a=1&b=<2>`, `<script>alert("x")</script>`)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "&lt;script&gt;")
}

func TestNavLinkRejectsOddAttributes(t *testing.T) {
	_, err := navLink("/", "Home", "class")
	assert.Error(t, err)
}

func TestNavLinkRejectsMalformedAttributeNames(t *testing.T) {
	_, err := navLink("/", "Home", `class="x" onclick`, "steal()")
	assert.Error(t, err)

	_, err = navLink("/", "Home", "", "value")
	assert.Error(t, err)
}

func TestTransitionNeverNavigates(t *testing.T) {
	var tr Transition
	assert.False(t, tr.IsNavigating())
	tr.Start("/anywhere")
	assert.False(t, tr.IsNavigating())
}
