package models

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// JSON member names of the fixed shapes. Anything else found while decoding
// lands in the Extra map of the value and is written back after the known
// members.
var (
	documentMembers = []string{
		KeyProducts, KeyDeliveryPrices, KeyDiscounts, KeyStoreInfo,
		KeyAgeSizes, KeyAvailableColors, KeyAvailableSizes,
	}
	productMembers       = []string{"name", "price", "image", "description", "availableSizes", "availableColors"}
	deliveryPriceMembers = []string{"home", "desk"}
	discountsMembers     = []string{"minQuantityForDiscount", "discountPerItem"}
	storeInfoMembers     = []string{"name", "tagline", "phoneNumbers"}
)

// The *Fields types share the layout of their counterparts without the JSON
// methods, so the standard encoding can be reused inside them.
type (
	documentFields      Document
	productFields       Product
	deliveryPriceFields DeliveryPrice
	discountsFields     Discounts
	storeInfoFields     StoreInfo
)

func (d *Document) UnmarshalJSON(data []byte) error {
	var fields documentFields
	extra, err := decodeWithExtra(data, &fields, documentMembers)
	if err != nil {
		return err
	}
	*d = Document(fields)
	d.Extra = extra

	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(documentFields(d), d.Extra, documentMembers)
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var fields productFields
	extra, err := decodeWithExtra(data, &fields, productMembers)
	if err != nil {
		return err
	}
	*p = Product(fields)
	p.Extra = extra

	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(productFields(p), p.Extra, productMembers)
}

func (p *DeliveryPrice) UnmarshalJSON(data []byte) error {
	var fields deliveryPriceFields
	extra, err := decodeWithExtra(data, &fields, deliveryPriceMembers)
	if err != nil {
		return err
	}
	*p = DeliveryPrice(fields)
	p.Extra = extra

	return nil
}

func (p DeliveryPrice) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(deliveryPriceFields(p), p.Extra, deliveryPriceMembers)
}

func (d *Discounts) UnmarshalJSON(data []byte) error {
	var fields discountsFields
	extra, err := decodeWithExtra(data, &fields, discountsMembers)
	if err != nil {
		return err
	}
	*d = Discounts(fields)
	d.Extra = extra

	return nil
}

func (d Discounts) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(discountsFields(d), d.Extra, discountsMembers)
}

func (s *StoreInfo) UnmarshalJSON(data []byte) error {
	var fields storeInfoFields
	extra, err := decodeWithExtra(data, &fields, storeInfoMembers)
	if err != nil {
		return err
	}
	*s = StoreInfo(fields)
	s.Extra = extra

	return nil
}

func (s StoreInfo) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(storeInfoFields(s), s.Extra, storeInfoMembers)
}

// decodeWithExtra decodes the object data into fields and returns the members
// that match none of known, compacted. Names are compared the way
// encoding/json matches struct fields, ignoring case. A JSON null leaves
// fields untouched.
func decodeWithExtra(data []byte, fields any, known []string) (map[string]json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	if err := json.Unmarshal(data, fields); err != nil {
		return nil, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	maps.DeleteFunc(members, func(name string, _ json.RawMessage) bool {
		return isKnownMember(name, known)
	})
	if len(members) == 0 {
		return nil, nil
	}
	for name, value := range members {
		var buf bytes.Buffer
		if err := json.Compact(&buf, value); err != nil {
			return nil, err
		}
		members[name] = buf.Bytes()
	}

	return members, nil
}

// encodeWithExtra encodes fields and appends the extra members, sorted by
// name, before the closing brace. HTML characters are not escaped.
func encodeWithExtra(fields any, extra map[string]json.RawMessage, known []string) ([]byte, error) {
	data, err := marshalUnescaped(fields)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	empty := len(data) == 2
	for _, name := range slices.Sorted(maps.Keys(extra)) {
		if isKnownMember(name, known) {
			continue
		}
		if !empty {
			buf.WriteByte(',')
		}
		empty = false

		key, err := marshalUnescaped(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err = json.Compact(&buf, extra[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isKnownMember(name string, known []string) bool {
	return slices.ContainsFunc(known, func(k string) bool { return strings.EqualFold(k, name) })
}
