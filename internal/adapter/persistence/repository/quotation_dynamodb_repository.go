package repository

import (
	"context"
	"errors"
	"time"

	"cotafacil/internal/domain/entities"
	"cotafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type lineItemRecord struct {
	ID                 string  `dynamodbav:"id"`
	SKU                string  `dynamodbav:"sku,omitempty"`
	Name               string  `dynamodbav:"name"`
	Description        string  `dynamodbav:"description,omitempty"`
	Unit               string  `dynamodbav:"unit,omitempty"`
	Quantity           float64 `dynamodbav:"quantity"`
	UnitPrice          float64 `dynamodbav:"unit_price"`
	UnitCost           float64 `dynamodbav:"unit_cost"`
	TaxRate            float64 `dynamodbav:"tax_rate"`
	PriceSource        string  `dynamodbav:"price_source,omitempty"`
	SuggestedPrice     float64 `dynamodbav:"suggested_price,omitempty"`
	MarketAveragePrice float64 `dynamodbav:"market_average_price,omitempty"`
}

type metricsRecord struct {
	TotalCost        float64 `dynamodbav:"total_cost"`
	TotalRevenue     float64 `dynamodbav:"total_revenue"`
	Subtotal         float64 `dynamodbav:"subtotal"`
	TaxAmount        float64 `dynamodbav:"tax_amount"`
	TotalAmount      float64 `dynamodbav:"total_amount"`
	GrossProfit      float64 `dynamodbav:"gross_profit"`
	Margin           float64 `dynamodbav:"margin"`
	MarginDefined    bool    `dynamodbav:"margin_defined"`
	MarkupPercentage float64 `dynamodbav:"markup_percentage"`
	MarkupDefined    bool    `dynamodbav:"markup_defined"`
}

type riskIndicatorRecord struct {
	Severity  string  `dynamodbav:"severity"`
	Message   string  `dynamodbav:"message"`
	Value     float64 `dynamodbav:"value"`
	Threshold float64 `dynamodbav:"threshold"`
}

type priceComparisonRecord struct {
	Item                 string  `dynamodbav:"item"`
	CurrentPrice         float64 `dynamodbav:"current_price"`
	AveragePrice         float64 `dynamodbav:"average_price"`
	Difference           float64 `dynamodbav:"difference"`
	PercentageDifference float64 `dynamodbav:"percentage_difference"`
}

type quotationItem struct {
	ID           string  `dynamodbav:"id"`
	ReferenceID  string  `dynamodbav:"reference_id"`
	Title        string  `dynamodbav:"title"`
	CustomerID   string  `dynamodbav:"customer_id,omitempty"`
	Status       string  `dynamodbav:"status"`
	Currency     string  `dynamodbav:"currency"`
	Description  string  `dynamodbav:"description,omitempty"`
	Notes        string  `dynamodbav:"notes,omitempty"`
	TargetMargin float64 `dynamodbav:"target_margin,omitempty"`

	Items            []lineItemRecord        `dynamodbav:"items"`
	Metrics          metricsRecord           `dynamodbav:"metrics"`
	RiskIndicators   []riskIndicatorRecord   `dynamodbav:"risk_indicators"`
	PriceComparisons []priceComparisonRecord `dynamodbav:"price_comparisons"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	SubmittedAt string `dynamodbav:"submitted_at,omitempty"`
	ExpiresAt   string `dynamodbav:"expires_at,omitempty"`
}

// QuotationDynamoRepository persists Quotation aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (items plus derived analysis) lives in one
// document: the usecase always rewrites the derived fields together
// with the items, so a single PutItem keeps them consistent.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter.Limit > 0 {
		input.Limit = aws.Int32(filter.Limit)
	}

	filterExpr := ""
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	if filter.Status != "" {
		filterExpr = "#status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
		names["#status"] = "status"
	}
	if filter.CustomerID != "" {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		filterExpr += "#customer_id = :customer_id"
		values[":customer_id"] = &types.AttributeValueMemberS{Value: filter.CustomerID}
		names["#customer_id"] = "customer_id"
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}

	// Scan's Limit only caps items evaluated per page, before the filter
	// expression runs. The cap on returned results is enforced here: stop
	// paging as soon as enough matches have been collected.
	quotations := []entities.Quotation{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quotationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotations = append(quotations, fromQuotationItem(it))
			if filter.Limit > 0 && len(quotations) >= int(filter.Limit) {
				return quotations, nil
			}
		}
	}
	return quotations, nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:           q.ID,
		ReferenceID:  q.ReferenceID,
		Title:        q.Title,
		CustomerID:   q.CustomerID,
		Status:       string(q.Status),
		Currency:     q.Currency,
		Description:  q.Description,
		Notes:        q.Notes,
		TargetMargin: q.TargetMargin,
		Metrics: metricsRecord{
			TotalCost:        q.Metrics.TotalCost,
			TotalRevenue:     q.Metrics.TotalRevenue,
			Subtotal:         q.Metrics.Subtotal,
			TaxAmount:        q.Metrics.TaxAmount,
			TotalAmount:      q.Metrics.TotalAmount,
			GrossProfit:      q.Metrics.GrossProfit,
			Margin:           q.Metrics.Margin,
			MarginDefined:    q.Metrics.MarginDefined,
			MarkupPercentage: q.Metrics.MarkupPercentage,
			MarkupDefined:    q.Metrics.MarkupDefined,
		},
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.SubmittedAt != nil {
		it.SubmittedAt = q.SubmittedAt.UTC().Format(time.RFC3339Nano)
	}
	if q.ExpiresAt != nil {
		it.ExpiresAt = q.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	for _, li := range q.Items {
		it.Items = append(it.Items, lineItemRecord{
			ID:                 li.ID,
			SKU:                li.SKU,
			Name:               li.Name,
			Description:        li.Description,
			Unit:               li.Unit,
			Quantity:           li.Quantity,
			UnitPrice:          li.UnitPrice,
			UnitCost:           li.UnitCost,
			TaxRate:            li.TaxRate,
			PriceSource:        string(li.PriceSource),
			SuggestedPrice:     li.SuggestedPrice,
			MarketAveragePrice: li.MarketAveragePrice,
		})
	}
	for _, ri := range q.RiskIndicators {
		it.RiskIndicators = append(it.RiskIndicators, riskIndicatorRecord{
			Severity:  string(ri.Severity),
			Message:   ri.Message,
			Value:     ri.Value,
			Threshold: ri.Threshold,
		})
	}
	for _, pc := range q.PriceComparisons {
		it.PriceComparisons = append(it.PriceComparisons, priceComparisonRecord{
			Item:                 pc.Item,
			CurrentPrice:         pc.CurrentPrice,
			AveragePrice:         pc.AveragePrice,
			Difference:           pc.Difference,
			PercentageDifference: pc.PercentageDifference,
		})
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Quotation{
		ID:           it.ID,
		ReferenceID:  it.ReferenceID,
		Title:        it.Title,
		CustomerID:   it.CustomerID,
		Status:       entities.QuotationStatus(it.Status),
		Currency:     it.Currency,
		Description:  it.Description,
		Notes:        it.Notes,
		TargetMargin: it.TargetMargin,
		Metrics: entities.ProfitabilityMetrics{
			TotalCost:        it.Metrics.TotalCost,
			TotalRevenue:     it.Metrics.TotalRevenue,
			Subtotal:         it.Metrics.Subtotal,
			TaxAmount:        it.Metrics.TaxAmount,
			TotalAmount:      it.Metrics.TotalAmount,
			GrossProfit:      it.Metrics.GrossProfit,
			Margin:           it.Metrics.Margin,
			MarginDefined:    it.Metrics.MarginDefined,
			MarkupPercentage: it.Metrics.MarkupPercentage,
			MarkupDefined:    it.Metrics.MarkupDefined,
		},
		Items:            []entities.LineItem{},
		RiskIndicators:   []entities.RiskIndicator{},
		PriceComparisons: []entities.PriceComparison{},
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.SubmittedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.SubmittedAt); err == nil {
			q.SubmittedAt = &ts
		}
	}
	if it.ExpiresAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, it.ExpiresAt); err == nil {
			q.ExpiresAt = &ts
		}
	}
	for _, li := range it.Items {
		q.Items = append(q.Items, entities.LineItem{
			ID:                 li.ID,
			SKU:                li.SKU,
			Name:               li.Name,
			Description:        li.Description,
			Unit:               li.Unit,
			Quantity:           li.Quantity,
			UnitPrice:          li.UnitPrice,
			UnitCost:           li.UnitCost,
			TaxRate:            li.TaxRate,
			PriceSource:        entities.PriceSource(li.PriceSource),
			SuggestedPrice:     li.SuggestedPrice,
			MarketAveragePrice: li.MarketAveragePrice,
		})
	}
	for _, ri := range it.RiskIndicators {
		q.RiskIndicators = append(q.RiskIndicators, entities.RiskIndicator{
			Severity:  entities.Severity(ri.Severity),
			Message:   ri.Message,
			Value:     ri.Value,
			Threshold: ri.Threshold,
		})
	}
	for _, pc := range it.PriceComparisons {
		q.PriceComparisons = append(q.PriceComparisons, entities.PriceComparison{
			Item:                 pc.Item,
			CurrentPrice:         pc.CurrentPrice,
			AveragePrice:         pc.AveragePrice,
			Difference:           pc.Difference,
			PercentageDifference: pc.PercentageDifference,
		})
	}
	return q
}
