package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-api/internal/product"
	"resource-api/internal/resource"
)

func testContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestDecodeCreate_DefaultsActive(t *testing.T) {
	c := testContext(http.MethodPost, "/products", `{"name":"Lamp","price":9.5,"stock":3,"category":"home"}`)
	p, err := decodeCreate(c)
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Equal(t, 9.5, p.Price)

	c = testContext(http.MethodPost, "/products", `{"name":"Lamp","price":-1,"category":"home"}`)
	_, err = decodeCreate(c)
	assert.Error(t, err)
}

func TestDecodeUpdate_ExplicitFalse(t *testing.T) {
	c := testContext(http.MethodPatch, "/products/1", `{"isActive":false}`)
	patch, err := decodeUpdate(c, true)
	require.NoError(t, err)
	assert.Equal(t, resource.Fields{product.ColumnIsActive: false}, patch.Fields())

	pr := product.Product{Name: "Lamp", IsActive: true}
	patch.Apply(&pr)
	assert.False(t, pr.IsActive)
	assert.Equal(t, "Lamp", pr.Name)
}

func TestDecodeFilters(t *testing.T) {
	c := testContext(http.MethodGet, "/products?category=home&isActive=true", "")
	f, err := decodeFilters(c)
	require.NoError(t, err)
	assert.Equal(t, resource.Filters{product.ColumnCategory: "home", product.ColumnIsActive: true}, f)
}
