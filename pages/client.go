package pages

import (
	"encoding/json"
	"fmt"
	"net/http"

	"globalmart/models"
)

// Client fetches page data over the site's own HTTP API. Pages never
// touch repositories directly; every method degrades to defaults so a
// failed call can never fail a page render.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: http.DefaultClient}
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return fmt.Errorf("api call unsuccessful")
	}

	return json.Unmarshal(envelope.Data, out)
}

func (c *Client) Settings() models.SiteSettings {
	settings := models.SiteSettings{}
	if err := c.get("/api/settings", &settings); err != nil {
		return models.DefaultSiteSettings()
	}
	return settings
}

func (c *Client) Products() []models.Product {
	products := []models.Product{}
	if err := c.get("/api/products", &products); err != nil {
		return nil
	}
	return products
}

func (c *Client) FeaturedProducts() []models.Product {
	products := []models.Product{}
	if err := c.get("/api/products/featured", &products); err != nil {
		return nil
	}
	return products
}

func (c *Client) Categories() []string {
	categories := []string{}
	if err := c.get("/api/products/categories", &categories); err != nil {
		return nil
	}
	return categories
}

func (c *Client) Product(id string) *models.Product {
	product := models.Product{}
	if err := c.get("/api/products/"+id, &product); err != nil {
		return nil
	}
	return &product
}
