package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		Products: map[string]Product{
			"1": {Name: "one", Price: 100},
			"2": {Name: "two", Price: 200, AvailableSizes: []string{"XL"}, AvailableColors: []string{"red"}},
		},
		DeliveryPrices: map[string]DeliveryPrice{
			PlaceholderRegion: {},
			"16 - Alger":      {Home: 500, Desk: 250},
		},
		AvailableSizes:  []string{"S", "M", "L"},
		AvailableColors: []string{"white", "black"},
	}
}

// ── SizesFor / ColorsFor ──────────────────────────────────────────────────────

// TestSizesFor_FallsBackToGlobalList verifies that a product without its own
// sizes resolves to AVAILABLE_SIZES.
func TestSizesFor_FallsBackToGlobalList(t *testing.T) {
	doc := sampleDocument()

	sizes, ok := doc.SizesFor("1")
	require.True(t, ok)
	assert.Equal(t, []string{"S", "M", "L"}, sizes)
}

// TestSizesFor_ProductOverride verifies that a product's own list wins for
// that product only.
func TestSizesFor_ProductOverride(t *testing.T) {
	doc := sampleDocument()

	sizes, ok := doc.SizesFor("2")
	require.True(t, ok)
	assert.Equal(t, []string{"XL"}, sizes)

	other, _ := doc.SizesFor("1")
	assert.Equal(t, doc.AvailableSizes, other)
}

// TestSizesFor_EmptyOwnList verifies that an empty own list means "no sizes"
// and is not replaced by the global list.
func TestSizesFor_EmptyOwnList(t *testing.T) {
	raw, err := ParseRawDocument([]byte(`{
		"PRODUCTS": {"7": {"name": "scarf", "price": 900, "availableSizes": [], "availableColors": []}},
		"AVAILABLE_SIZES": ["S", "M"],
		"AVAILABLE_COLORS": ["red"]
	}`))
	require.NoError(t, err)
	doc, err := raw.Decode()
	require.NoError(t, err)

	sizes, ok := doc.SizesFor("7")
	require.True(t, ok)
	assert.Empty(t, sizes)
	assert.NotNil(t, sizes)

	colors, _ := doc.ColorsFor("7")
	assert.Empty(t, colors)

	data, err := json.Marshal(doc.Products["7"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"scarf","price":900,"image":"","description":"","availableSizes":[],"availableColors":[]}`, string(data))
}

func TestSizesFor_UnknownProduct(t *testing.T) {
	_, ok := sampleDocument().SizesFor("42")
	assert.False(t, ok)
}

func TestColorsFor(t *testing.T) {
	doc := sampleDocument()

	colors, ok := doc.ColorsFor("1")
	require.True(t, ok)
	assert.Equal(t, []string{"white", "black"}, colors)

	colors, ok = doc.ColorsFor("2")
	require.True(t, ok)
	assert.Equal(t, []string{"red"}, colors)
}

// ── placeholder region ────────────────────────────────────────────────────────

func TestHasPlaceholderRegion(t *testing.T) {
	assert.True(t, sampleDocument().HasPlaceholderRegion())

	doc := Document{DeliveryPrices: map[string]DeliveryPrice{"16 - Alger": {Home: 500, Desk: 250}}}
	assert.False(t, doc.HasPlaceholderRegion())
	assert.Len(t, doc.DeliveryPrices, 1)

	assert.False(t, Document{}.HasPlaceholderRegion())
}

// ── Clone ─────────────────────────────────────────────────────────────────────

// TestClone_IsIndependent verifies that mutating a clone leaves the original
// untouched.
func TestClone_IsIndependent(t *testing.T) {
	doc := sampleDocument()
	doc.StoreInfo = &StoreInfo{Name: "shop", PhoneNumbers: []string{"1"}}
	doc.Discounts = &Discounts{MinQuantityForDiscount: 2, DiscountPerItem: 300}

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.Products["1"] = Product{Name: "changed"}
	clone.Products["2"].AvailableSizes[0] = "XXL"
	clone.StoreInfo.PhoneNumbers[0] = "2"
	clone.Discounts.DiscountPerItem = 1
	clone.AvailableSizes[0] = "XS"

	assert.Equal(t, "one", doc.Products["1"].Name)
	assert.Equal(t, "XL", doc.Products["2"].AvailableSizes[0])
	assert.Equal(t, "1", doc.StoreInfo.PhoneNumbers[0])
	assert.Equal(t, float64(300), doc.Discounts.DiscountPerItem)
	assert.Equal(t, "S", doc.AvailableSizes[0])
}

// ── raw documents ─────────────────────────────────────────────────────────────

func TestParseRawDocument(t *testing.T) {
	raw, err := ParseRawDocument([]byte(`{"PRODUCTS":{"1":{"name":"a","price":1}},"EXTRA":true}`))
	require.NoError(t, err)
	assert.Len(t, raw, 2)

	doc, err := raw.Decode()
	require.NoError(t, err)
	assert.Equal(t, "a", doc.Products["1"].Name)
}

func TestParseRawDocument_RejectsNonObjects(t *testing.T) {
	_, err := ParseRawDocument([]byte(`null`))
	assert.ErrorIs(t, err, ErrDocumentNotObject)

	_, err = ParseRawDocument([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = ParseRawDocument([]byte(`{broken`))
	assert.Error(t, err)
}

// TestDocument_KeepsUnknownMembers verifies that members outside the known
// shapes survive a decode and encode cycle at every level.
func TestDocument_KeepsUnknownMembers(t *testing.T) {
	const input = `{
		"PRODUCTS": {"1": {"name": "a", "price": 1, "image": "", "description": "", "oldPrice": 5000, "tags": ["new"]}},
		"DELIVERY_PRICES": {"16 - Alger": {"home": 500, "desk": 250, "days": 2}},
		"DISCOUNTS": {"minQuantityForDiscount": 2, "discountPerItem": 300, "until": "2026-12-31"},
		"STORE_INFO": {"name": "s", "tagline": "t", "phoneNumbers": [], "email": "a&b@shop.dz"},
		"EXTRA": {"banner": "<b>soldes</b>"}
	}`

	raw, err := ParseRawDocument([]byte(input))
	require.NoError(t, err)
	doc, err := raw.Decode()
	require.NoError(t, err)

	assert.JSONEq(t, `5000`, string(doc.Products["1"].Extra["oldPrice"]))
	assert.Contains(t, doc.Extra, "EXTRA")

	out, err := doc.Raw()
	require.NoError(t, err)
	assert.Len(t, out, 5)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(data))
}

// TestDocument_EncodeUnescaped verifies that unknown members are written
// without HTML escaping when the caller disables it.
func TestDocument_EncodeUnescaped(t *testing.T) {
	doc := Document{Extra: map[string]json.RawMessage{"NOTE": json.RawMessage(`"a & <b>"`)}}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(doc))

	assert.Equal(t, `{"NOTE":"a & <b>"}`+"\n", buf.String())
}

// TestClone_CopiesExtra verifies that unknown members are not shared with the
// clone.
func TestClone_CopiesExtra(t *testing.T) {
	doc := Document{
		Products: map[string]Product{"1": {Name: "a", Extra: map[string]json.RawMessage{"oldPrice": json.RawMessage(`5`)}}},
		Extra:    map[string]json.RawMessage{"EXTRA": json.RawMessage(`true`)},
	}

	clone := doc.Clone()
	clone.Extra["OTHER"] = json.RawMessage(`1`)
	clone.Products["1"].Extra["x"] = json.RawMessage(`1`)

	assert.Len(t, doc.Extra, 1)
	assert.Len(t, doc.Products["1"].Extra, 1)
}

// TestRaw_OmitsAbsentKeys verifies that unset fields do not turn into
// top-level keys, which would shadow lower-priority sources on merge.
func TestRaw_OmitsAbsentKeys(t *testing.T) {
	raw, err := Document{AgeSizes: map[string]string{"3": "S"}}.Raw()
	require.NoError(t, err)

	assert.Len(t, raw, 1)
	assert.Contains(t, raw, KeyAgeSizes)
}

// ── credentials ───────────────────────────────────────────────────────────────

func TestCredentials_URLs(t *testing.T) {
	c := Credentials{Username: "shop", Repo: "settings"}

	assert.Equal(t, "main", c.BranchOrDefault())
	assert.Equal(t,
		"https://raw.githubusercontent.com/shop/settings/main/config.json",
		c.RawURL("https://raw.githubusercontent.com/", "config.json"))
	assert.Equal(t, "/repos/shop/settings/contents/config.json", c.ContentsPath("/config.json"))

	c.Branch = "prod"
	assert.Equal(t, "http://raw/shop/settings/prod/config.json", c.RawURL("http://raw", "config.json"))
}

func TestCredentials_Capabilities(t *testing.T) {
	assert.False(t, Credentials{Username: "u"}.CanRead())
	assert.True(t, Credentials{Username: "u", Repo: "r"}.CanRead())
	assert.False(t, Credentials{Username: "u", Repo: "r"}.CanWrite())
	assert.True(t, Credentials{Username: "u", Repo: "r", Token: "t"}.CanWrite())
}
