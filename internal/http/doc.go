// Package http exposes the site over a gin router.
//
// Routes mount under /api by default:
//   - Posts: GET /posts, GET /posts/:id, POST /posts
//   - Categories: GET /categories, GET /categories/:slug
//   - Exercises: GET /exercises, GET /exercises/:id
//   - Forms: POST /newsletter, POST /contact
//   - Preview: POST /render
//
// Host applications can call Register on their own gin router instead of
// NewRouter.
package http
