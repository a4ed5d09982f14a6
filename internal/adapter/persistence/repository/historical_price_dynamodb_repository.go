package repository

import (
	"context"
	"time"

	"cotafacil/internal/domain/entities"
	"cotafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoricalPricesTableName = "historical_prices"
	historicalPricesItemNameIndex    = "item_name-index"
)

type historicalPriceItem struct {
	ID           string  `dynamodbav:"id"`
	ItemName     string  `dynamodbav:"item_name"`
	ItemSKU      string  `dynamodbav:"item_sku,omitempty"`
	UnitPrice    float64 `dynamodbav:"unit_price"`
	Source       string  `dynamodbav:"source"`
	Region       string  `dynamodbav:"region,omitempty"`
	CustomerType string  `dynamodbav:"customer_type,omitempty"`
	RecordedAt   string  `dynamodbav:"recorded_at"`
}

// HistoricalPriceDynamoRepository persists price reference records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI item_name-index: PK item_name, SK recorded_at
//
// RecordedAt is stored as RFC3339Nano, which sorts lexicographically in
// chronological order, so the GSI range key doubles as the time filter.

type HistoricalPriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoricalPriceRepository = (*HistoricalPriceDynamoRepository)(nil)

func NewHistoricalPriceDynamoRepository(ddb *dynamodb.Client) *HistoricalPriceDynamoRepository {
	return &HistoricalPriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORICAL_PRICES_TABLE", defaultHistoricalPricesTableName),
	}
}

func (r *HistoricalPriceDynamoRepository) Create(ctx context.Context, p entities.HistoricalPrice) (entities.HistoricalPrice, error) {
	av, err := attributevalue.MarshalMap(historicalPriceItem{
		ID:           p.ID,
		ItemName:     p.ItemName,
		ItemSKU:      p.ItemSKU,
		UnitPrice:    p.UnitPrice,
		Source:       p.Source,
		Region:       p.Region,
		CustomerType: p.CustomerType,
		RecordedAt:   p.RecordedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.HistoricalPrice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.HistoricalPrice{}, err
	}
	return p, nil
}

func (r *HistoricalPriceDynamoRepository) ListByItemName(ctx context.Context, itemName string, since time.Time) ([]entities.HistoricalPrice, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historicalPricesItemNameIndex),
		KeyConditionExpression: aws.String("#item_name = :item_name AND #recorded_at >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#item_name":   "item_name",
			"#recorded_at": "recorded_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_name": &types.AttributeValueMemberS{Value: itemName},
			":since":     &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
		},
	}

	records := []entities.HistoricalPrice{}
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []historicalPriceItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			recordedAt, _ := time.Parse(time.RFC3339Nano, it.RecordedAt)
			records = append(records, entities.HistoricalPrice{
				ID:           it.ID,
				ItemName:     it.ItemName,
				ItemSKU:      it.ItemSKU,
				UnitPrice:    it.UnitPrice,
				Source:       it.Source,
				Region:       it.Region,
				CustomerType: it.CustomerType,
				RecordedAt:   recordedAt,
			})
		}
	}
	return records, nil
}
