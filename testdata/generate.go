package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

type Product struct {
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

func main() {
	products := []Product{
		{Brand: "A", Price: 100, Rating: 4.5},
		{Brand: "B", Price: 200, Rating: 3.8},
		{Brand: "C", Price: 300, Rating: 4.1},
		{Brand: "A", Price: 400, Rating: 4.9},
	}

	if err := parquet.WriteFile("products.parquet", products); err != nil {
		log.Fatal(err)
	}

	file, err := os.Create("products.csv")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	_ = w.Write([]string{"brand", "price", "rating"})
	for _, p := range products {
		_ = w.Write([]string{p.Brand, strconv.FormatInt(p.Price, 10), strconv.FormatFloat(p.Rating, 'f', -1, 64)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated products.csv and products.parquet with 4 products")
}
