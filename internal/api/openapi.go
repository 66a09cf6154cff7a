package api

import "github.com/gin-gonic/gin"

// openAPIDocument builds the static OpenAPI 3.0 description of the API.
func openAPIDocument(name, version string) gin.H {
	return gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":   name,
			"version": version,
		},
		"servers": []gin.H{{"url": "/"}},
		"paths": gin.H{
			"/clubs": gin.H{
				"get": gin.H{
					"summary": "List clubs with filters and pagination",
					"parameters": []gin.H{
						{"name": "q", "in": "query", "schema": gin.H{"type": "string"}},
						{"name": "state", "in": "query", "schema": gin.H{"type": "string", "example": "SP"}},
						{"name": "status", "in": "query", "schema": gin.H{"type": "string", "enum": []string{"active", "inactive"}}},
						{"name": "letter", "in": "query", "schema": gin.H{"type": "string", "example": "S"}},
						{"name": "limit", "in": "query", "schema": gin.H{"type": "integer", "default": 50}},
						{"name": "offset", "in": "query", "schema": gin.H{"type": "integer", "default": 0}},
					},
					"responses": gin.H{"200": gin.H{"description": "OK"}},
				},
			},
			"/clubs/{slug}": gin.H{
				"get": gin.H{
					"summary": "Club detail with Wikipedia media enrichment",
					"parameters": []gin.H{
						{"name": "slug", "in": "path", "required": true, "schema": gin.H{"type": "string"}},
					},
					"responses": gin.H{
						"200": gin.H{"description": "OK"},
						"404": gin.H{"description": "Not Found"},
					},
				},
			},
			"/views/grid": gin.H{
				"get": gin.H{
					"summary": "Grid view: short-name filter and optional sort",
					"parameters": []gin.H{
						{"name": "q", "in": "query", "schema": gin.H{"type": "string"}},
						{"name": "sort", "in": "query", "schema": gin.H{"type": "string", "enum": []string{"short_name", "full_name", "founded"}}},
					},
					"responses": gin.H{"200": gin.H{"description": "OK"}},
				},
			},
			"/views/timeline": gin.H{
				"get": gin.H{
					"summary": "Clubs grouped by founding year, descending",
					"parameters": []gin.H{
						{"name": "q", "in": "query", "schema": gin.H{"type": "string"}},
					},
					"responses": gin.H{"200": gin.H{"description": "OK"}},
				},
			},
			"/views/states/{uf}": gin.H{
				"get": gin.H{
					"summary": "Clubs of one state, sorted by short name",
					"parameters": []gin.H{
						{"name": "uf", "in": "path", "required": true, "schema": gin.H{"type": "string", "example": "SP"}},
					},
					"responses": gin.H{"200": gin.H{"description": "OK"}},
				},
			},
		},
	}
}
