package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"gopkg.in/yaml.v2"
)

func main() {
	// Parse command line arguments
	questionPtr := flag.String("question", "", "The question to ask the Lambda function")
	function := flag.String("function", "kb-query", "Name or ARN of the query function")
	verbose := flag.Bool("verbose", false, "Show citations also")
	asYAML := flag.Bool("yaml", false, "Print the whole response as YAML")
	flag.Parse()

	if *questionPtr == "" {
		log.Fatalf("question parameter is required")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}
	client := lambda.NewFromConfig(cfg)

	payload, err := NewPayload(*questionPtr)
	if err != nil {
		log.Fatalf("failed to marshal payload, %v", err)
	}

	result, err := client.Invoke(context.TODO(), &lambda.InvokeInput{
		FunctionName: aws.String(*function),
		Payload:      payload,
	})
	if err != nil {
		log.Fatalf("failed to invoke lambda function, %v", err)
	}
	if result.FunctionError != nil {
		log.Fatalf("lambda function returned an error: %s", aws.ToString(result.FunctionError))
	}

	response, err := DecodeReply(result.Payload)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}

	if *asYAML {
		out, err := yaml.Marshal(response)
		if err != nil {
			log.Fatalf("failed to render yaml, %v", err)
		}
		fmt.Print(string(out))
		return
	}

	fmt.Println("Answer:", response.Answer)

	if *verbose {
		fmt.Print("\nThe following citations were returned\n============\n\n")
		for i, c := range response.Citations {
			fmt.Printf("Citation %d\n", i+1)
			fmt.Printf("Content: %s\n", c.Content)
			fmt.Printf("Location: %v\n", c.Location)
		}
	}
}
