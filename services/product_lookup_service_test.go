package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFoundProduct(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/product/5449000000996.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Cola Bottle",
				"generic_name": "Soft drink",
				"categories_tags": ["en:beverages"],
				"packaging_tags": ["en:plastic-bottle"]
			}
		}`))
	}))
	defer ts.Close()

	svc := NewProductLookupService(ts.URL)
	info, err := svc.Lookup(context.Background(), "5449000000996")
	require.NoError(t, err)
	require.True(t, info.Found)
	require.Equal(t, "Cola Bottle", info.Name)
	require.Equal(t, "Soft drink", info.Description)
	require.Equal(t, "5449000000996", info.Barcode)
	require.Equal(t, DisposalRecyclable, info.Disposal)
}

func TestLookupUnknownBarcodeFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 0, "product": {}}`))
	}))
	defer ts.Close()

	svc := NewProductLookupService(ts.URL)
	info, err := svc.Lookup(context.Background(), "0000000000000")
	require.NoError(t, err, "an unknown barcode is not an error")
	require.False(t, info.Found)
	require.Equal(t, "Electronic Item", info.Name)
	require.Equal(t, DisposalEWaste, info.Disposal)
	require.Equal(t, "0000000000000", info.Barcode)
}

func TestLookupOrganicProductIsCompostable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Bananas",
				"categories_tags": ["en:fruits"],
				"packaging_tags": ["en:plastic-bag"]
			}
		}`))
	}))
	defer ts.Close()

	svc := NewProductLookupService(ts.URL)
	info, err := svc.Lookup(context.Background(), "1234567890123")
	require.NoError(t, err)
	require.Equal(t, DisposalCompostable, info.Disposal, "category rule wins over packaging")
}

func TestLookupUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := NewProductLookupService(ts.URL)
	_, err := svc.Lookup(context.Background(), "123")
	require.Error(t, err)
}
