package client

import (
	"context"
	"fmt"
)

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Users lists all users.
func (c *Client) Users(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/users")
}

// CreateUser creates a user. role is one of Administrator, Manager,
// Live Viewer, or Viewer; empty means Manager.
func (c *Client) CreateUser(ctx context.Context, username, password, role string) (*Response, error) {
	if role == "" {
		role = "Manager"
	}
	body := userRequest{
		Username: username,
		Password: password,
		Role:     role,
	}
	return c.post(ctx, "/users", body)
}

// User retrieves a user by ID.
func (c *Client) User(ctx context.Context, userID int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("/users/%d", userID))
}

// UpdateUser fully replaces a user resource.
func (c *Client) UpdateUser(ctx context.Context, userID int, body any) (*Response, error) {
	return c.put(ctx, fmt.Sprintf("/users/%d", userID), body)
}

// PatchUser partially updates a user resource.
func (c *Client) PatchUser(ctx context.Context, userID int, body any) (*Response, error) {
	return c.patch(ctx, fmt.Sprintf("/users/%d", userID), body)
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, userID int) (*Response, error) {
	return c.delete(ctx, fmt.Sprintf("/users/%d", userID))
}
