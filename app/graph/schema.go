// Package graph exposes a read-only GraphQL view over the catalogue, the
// orders and the dashboard stats for admin tooling. Mutations go through the
// REST endpoints.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/sweetdelights/bakery/app/services"
)

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"name":     &graphql.Field{Type: graphql.String},
		"price":    &graphql.Field{Type: graphql.Float},
		"quantity": &graphql.Field{Type: graphql.Int},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"category":    &graphql.Field{Type: graphql.String},
		"image":       &graphql.Field{Type: graphql.String},
		"available":   &graphql.Field{Type: graphql.Boolean},
		"createdAt":   &graphql.Field{Type: graphql.String},
		"updatedAt":   &graphql.Field{Type: graphql.String},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.String},
		"items":        &graphql.Field{Type: graphql.NewList(orderItemType)},
		"customerName": &graphql.Field{Type: graphql.String},
		"address":      &graphql.Field{Type: graphql.String},
		"phone":        &graphql.Field{Type: graphql.String},
		"email":        &graphql.Field{Type: graphql.String},
		"notes":        &graphql.Field{Type: graphql.String},
		"total":        &graphql.Field{Type: graphql.Float},
		"status":       &graphql.Field{Type: graphql.String},
		"createdAt":    &graphql.Field{Type: graphql.String},
		"updatedAt":    &graphql.Field{Type: graphql.String},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"totalProducts":   &graphql.Field{Type: graphql.Int},
		"totalOrders":     &graphql.Field{Type: graphql.Int},
		"todayOrders":     &graphql.Field{Type: graphql.Int},
		"pendingOrders":   &graphql.Field{Type: graphql.Int},
		"completedOrders": &graphql.Field{Type: graphql.Int},
		"totalRevenue":    &graphql.Field{Type: graphql.Float},
		"todayRevenue":    &graphql.Field{Type: graphql.Float},
		"unreadContacts":  &graphql.Field{Type: graphql.Int},
	},
})

// NewSchema builds the root query over the given services.
func NewSchema(products *services.ProductService, orders *services.OrderService, stats *services.StatsService) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, _ := p.Args["category"].(string)
					search, _ := p.Args["search"].(string)
					return products.List(category, search)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return products.Get(p.Args["id"].(string))
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.String},
					"date":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					status, _ := p.Args["status"].(string)
					date, _ := p.Args["date"].(string)
					return orders.List(status, date)
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orders.Get(p.Args["id"].(string))
				},
			},
			"stats": &graphql.Field{
				Type: statsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return stats.Dashboard()
				},
			},
		},
	})
	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
