// Package docs registers the OpenAPI description served under /swag/swagger/.
// Regenerate with: swag init -g cmd/art_academy/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {"tags": ["health"], "summary": "Проверка состояния сервиса", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/v1/site": {
            "get": {"tags": ["site"], "summary": "Модель представления сайта", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/techniques": {
            "get": {
                "tags": ["techniques"],
                "summary": "Опубликованные техники рисования",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "difficulty", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/techniques/{id}": {
            "get": {
                "tags": ["techniques"],
                "summary": "Страница техники",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/links/chat": {
            "get": {
                "tags": ["site"],
                "summary": "Ссылка на чат академии",
                "parameters": [
                    {"type": "string", "name": "message", "in": "query"},
                    {"type": "string", "name": "course", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/admin/login": {
            "post": {"tags": ["auth"], "summary": "Вход администратора", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/admin/config": {
            "get": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Документ конфигурации сайта", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Сохранение конфигурации сайта", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Сброс конфигурации", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/uploads": {
            "post": {"tags": ["uploads"], "security": [{"ApiKeyAuth": []}], "summary": "Загрузка изображения", "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "413": {"description": "Request Entity Too Large"}, "415": {"description": "Unsupported Media Type"}}},
            "delete": {"tags": ["uploads"], "security": [{"ApiKeyAuth": []}], "summary": "Удаление изображения по URL", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/admin/settings/{key}": {
            "get": {"tags": ["settings"], "security": [{"ApiKeyAuth": []}], "summary": "Значение настройки", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["settings"], "security": [{"ApiKeyAuth": []}], "summary": "Запись настройки", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/refresh": {
            "post": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Принудительное обновление данных сайта", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/{collection}": {
            "get": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Все записи коллекции", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Создание записи", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/admin/{collection}/{id}": {
            "get": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Запись по id", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Частичное обновление", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["admin"], "security": [{"ApiKeyAuth": []}], "summary": "Удаление записи", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Art Academy API",
	Description:      "Контент сайта художественной академии: галерея, курсы, преподаватели, техники рисования и конфигурация сайта.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
